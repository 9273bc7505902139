package stackitem

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
)

// Array is a stack item holding an ordered list of items with reference
// semantics: aliasing two stack slots to the same Array is observable
// (spec §3, invariant ii).
type Array struct {
	items []Item
}

// NewArray builds an Array from items; items is taken by reference, not
// copied.
func NewArray(items []Item) *Array {
	return &Array{items: items}
}

// Type implements the Item interface.
func (a *Array) Type() Type { return ArrayT }

// String implements the fmt.Stringer interface.
func (a *Array) String() string { return "Array" }

// Dup implements the Item interface. Arrays alias: duplicating one keeps
// both stack slots pointing at the same backing list.
func (a *Array) Dup() Item { return a }

// Equals implements the Item interface: reference equality for Array.
func (a *Array) Equals(other Item) bool {
	o, ok := other.(*Array)
	return ok && o == a
}

// AsBigInteger implements the Item interface; Array has no integer coercion.
func (a *Array) AsBigInteger() (*big.Int, error) { return nil, ErrInvalidType }

// AsBool implements the Item interface: any array is truthy.
func (a *Array) AsBool() (bool, error) { return true, nil }

// AsBuffer implements the Item interface; Array has no buffer coercion.
func (a *Array) AsBuffer() ([]byte, error) { return nil, ErrInvalidType }

// AsArray implements the Item interface.
func (a *Array) AsArray() ([]Item, error) { return a.items, nil }

// Len reports the number of elements.
func (a *Array) Len() int { return len(a.items) }

// At returns the element at index i by reference (PICKITEM).
func (a *Array) At(i int) (Item, error) {
	if i < 0 || i >= len(a.items) {
		return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidType, i)
	}
	return a.items[i], nil
}

// SetAt sets a[i] = v. Callers implementing SETITEM are responsible for
// cloning v first when a is a Struct and v is a Struct; Array itself never
// clones.
func (a *Array) SetAt(i int, v Item) error {
	if i < 0 || i >= len(a.items) {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidType, i)
	}
	a.items[i] = v
	return nil
}

// ToContractParameter implements the Item interface.
func (a *Array) ToContractParameter() smartcontract.Parameter {
	params := make([]smartcontract.Parameter, len(a.items))
	for i, it := range a.items {
		params[i] = it.ToContractParameter()
	}
	return smartcontract.NewArrayParameter(params)
}
