package stackitem

import (
	"encoding/hex"
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
)

// Buffer is a raw byte-string stack item.
type Buffer []byte

// NewBuffer wraps b as a Buffer item. The slice is copied defensively
// since Buffer values are otherwise treated as immutable once pushed.
func NewBuffer(b []byte) *Buffer {
	v := make(Buffer, len(b))
	copy(v, b)
	return &v
}

// Type implements the Item interface.
func (b *Buffer) Type() Type { return BufferT }

// String implements the fmt.Stringer interface.
func (b *Buffer) String() string { return hex.EncodeToString(*b) }

// Dup implements the Item interface.
func (b *Buffer) Dup() Item { return NewBuffer(*b) }

// Equals implements the Item interface: Integer/Boolean/Buffer compare by
// canonical numeric value (spec §3(ii)).
func (b *Buffer) Equals(other Item) bool {
	n, err := other.AsBigInteger()
	if err != nil {
		return false
	}
	self, _ := b.AsBigInteger()
	return self.Cmp(n) == 0
}

// AsBigInteger implements the Item interface via little-endian
// two's-complement decoding; an empty buffer is zero.
func (b *Buffer) AsBigInteger() (*big.Int, error) { return fromBytes(*b), nil }

// AsBool implements the Item interface: any nonzero byte is true.
func (b *Buffer) AsBool() (bool, error) {
	for _, x := range *b {
		if x != 0 {
			return true, nil
		}
	}
	return false, nil
}

// AsBuffer implements the Item interface.
func (b *Buffer) AsBuffer() ([]byte, error) { return *b, nil }

// AsArray implements the Item interface; Buffer has no array coercion.
func (b *Buffer) AsArray() ([]Item, error) { return nil, ErrInvalidType }

// ToContractParameter implements the Item interface.
func (b *Buffer) ToContractParameter() smartcontract.Parameter {
	return smartcontract.NewByteArrayParameter(*b)
}
