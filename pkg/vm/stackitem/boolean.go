package stackitem

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
)

// Boolean is the Boolean stack item variant.
type Boolean bool

// NewBoolean wraps b as a Boolean item.
func NewBoolean(b bool) *Boolean {
	v := Boolean(b)
	return &v
}

// Type implements the Item interface.
func (b *Boolean) Type() Type { return BooleanT }

// String implements the fmt.Stringer interface.
func (b *Boolean) String() string {
	if *b {
		return "true"
	}
	return "false"
}

// Dup implements the Item interface.
func (b *Boolean) Dup() Item {
	v := *b
	return &v
}

// Equals implements the Item interface.
func (b *Boolean) Equals(other Item) bool {
	n, err := other.AsBigInteger()
	if err != nil {
		return false
	}
	self, _ := b.AsBigInteger()
	return self.Cmp(n) == 0
}

// AsBigInteger implements the Item interface: true=1, false=0.
func (b *Boolean) AsBigInteger() (*big.Int, error) {
	if *b {
		return big.NewInt(1), nil
	}
	return big.NewInt(0), nil
}

// AsBool implements the Item interface.
func (b *Boolean) AsBool() (bool, error) { return bool(*b), nil }

// AsBuffer implements the Item interface: true=0x01, false=empty.
func (b *Boolean) AsBuffer() ([]byte, error) {
	if *b {
		return []byte{0x01}, nil
	}
	return []byte{}, nil
}

// AsArray implements the Item interface; Boolean has no array coercion.
func (b *Boolean) AsArray() ([]Item, error) { return nil, ErrInvalidType }

// ToContractParameter implements the Item interface.
func (b *Boolean) ToContractParameter() smartcontract.Parameter {
	return smartcontract.NewBoolParameter(bool(*b))
}
