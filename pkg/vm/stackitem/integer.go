package stackitem

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
)

// Integer is an arbitrary-precision signed integer stack item.
type Integer struct {
	val *big.Int
}

// NewInteger wraps n as an Integer item.
func NewInteger(n *big.Int) *Integer {
	return &Integer{val: new(big.Int).Set(n)}
}

// Type implements the Item interface.
func (i *Integer) Type() Type { return IntegerT }

// String implements the fmt.Stringer interface.
func (i *Integer) String() string { return i.val.String() }

// Dup implements the Item interface; Integer is immutable so duplication
// shares the underlying value safely.
func (i *Integer) Dup() Item { return i }

// Equals implements the Item interface: Integer/Boolean/Buffer compare by
// canonical numeric value (spec §3(ii)).
func (i *Integer) Equals(other Item) bool {
	n, err := other.AsBigInteger()
	if err != nil {
		return false
	}
	return i.val.Cmp(n) == 0
}

// AsBigInteger implements the Item interface.
func (i *Integer) AsBigInteger() (*big.Int, error) { return i.val, nil }

// AsBool implements the Item interface: nonzero is true.
func (i *Integer) AsBool() (bool, error) { return i.val.Sign() != 0, nil }

// AsBuffer implements the Item interface via little-endian two's-complement
// encoding.
func (i *Integer) AsBuffer() ([]byte, error) { return toBytes(i.val), nil }

// AsArray implements the Item interface; Integer has no array coercion.
func (i *Integer) AsArray() ([]Item, error) { return nil, ErrInvalidType }

// ToContractParameter implements the Item interface.
func (i *Integer) ToContractParameter() smartcontract.Parameter {
	return smartcontract.NewIntegerParameter(i.val.Int64())
}

// Int64 reports the integer value truncated to an int64, for callers that
// have already bounds-checked it (e.g. shift counts, PICK/ROLL indices).
func (i *Integer) Int64() int64 { return i.val.Int64() }
