package stackitem

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
)

// Struct behaves like Array except SETITEM deep-clones a Struct value
// before storing it (spec §3, §4.1) — plain duplication (DUP, PICK, ...)
// still aliases, same as Array.
type Struct struct {
	items []Item
}

// NewStruct builds a Struct from items; items is taken by reference.
func NewStruct(items []Item) *Struct {
	return &Struct{items: items}
}

// Type implements the Item interface.
func (s *Struct) Type() Type { return StructT }

// String implements the fmt.Stringer interface.
func (s *Struct) String() string { return "Struct" }

// Dup implements the Item interface; see the type doc comment.
func (s *Struct) Dup() Item { return s }

// Equals implements the Item interface: reference equality for Struct.
func (s *Struct) Equals(other Item) bool {
	o, ok := other.(*Struct)
	return ok && o == s
}

// AsBigInteger implements the Item interface; Struct has no integer coercion.
func (s *Struct) AsBigInteger() (*big.Int, error) { return nil, ErrInvalidType }

// AsBool implements the Item interface: any struct is truthy.
func (s *Struct) AsBool() (bool, error) { return true, nil }

// AsBuffer implements the Item interface; Struct has no buffer coercion.
func (s *Struct) AsBuffer() ([]byte, error) { return nil, ErrInvalidType }

// AsArray implements the Item interface.
func (s *Struct) AsArray() ([]Item, error) { return s.items, nil }

// Len reports the number of elements.
func (s *Struct) Len() int { return len(s.items) }

// At returns the element at index i by reference.
func (s *Struct) At(i int) (Item, error) {
	if i < 0 || i >= len(s.items) {
		return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidType, i)
	}
	return s.items[i], nil
}

// SetAt sets s[i] = v with no cloning; SETITEM's caller clones v itself
// when v is a Struct, per spec §3(iii).
func (s *Struct) SetAt(i int, v Item) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidType, i)
	}
	s.items[i] = v
	return nil
}

// Clone returns a deep copy of s: nested Structs are cloned recursively,
// nested Arrays keep their reference semantics and are copied shallowly.
func (s *Struct) Clone() *Struct {
	items := make([]Item, len(s.items))
	for i, it := range s.items {
		if inner, ok := it.(*Struct); ok {
			items[i] = inner.Clone()
		} else {
			items[i] = it
		}
	}
	return &Struct{items: items}
}

// ToContractParameter implements the Item interface.
func (s *Struct) ToContractParameter() smartcontract.Parameter {
	params := make([]smartcontract.Parameter, len(s.items))
	for i, it := range s.items {
		params[i] = it.ToContractParameter()
	}
	return smartcontract.NewArrayParameter(params)
}
