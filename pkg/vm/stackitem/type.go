package stackitem

import "fmt"

// Type identifies the runtime variant of a stack item (spec §3).
type Type byte

// The full set of stack item variants the classic VM recognizes.
const (
	IntegerT Type = 0x01
	BooleanT Type = 0x02
	BufferT  Type = 0x03
	ArrayT   Type = 0x04
	StructT  Type = 0x05
	ObjectT  Type = 0x06
	InvalidT Type = 0xFF
)

// String implements the fmt.Stringer interface.
func (t Type) String() string {
	switch t {
	case IntegerT:
		return "Integer"
	case BooleanT:
		return "Boolean"
	case BufferT:
		return "Buffer"
	case ArrayT:
		return "Array"
	case StructT:
		return "Struct"
	case ObjectT:
		return "InteropInterface"
	default:
		return "INVALID"
	}
}

// FromString returns the recognized Type whose String form is s.
func FromString(s string) (Type, error) {
	for _, t := range []Type{IntegerT, BooleanT, BufferT, ArrayT, StructT, ObjectT} {
		if t.String() == s {
			return t, nil
		}
	}
	return InvalidT, fmt.Errorf("unknown stack item type %q", s)
}

// IsValid reports whether t is a recognized stack item type.
func (t Type) IsValid() bool {
	switch t {
	case IntegerT, BooleanT, BufferT, ArrayT, StructT, ObjectT:
		return true
	default:
		return false
	}
}
