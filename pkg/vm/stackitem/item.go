// Package stackitem implements the VM's tagged-union runtime value: the
// Integer/Boolean/Buffer/Array/Struct variants and the opaque Object
// wrapper for ledger entities (spec §3, §4.1).
package stackitem

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
)

// ErrInvalidType is returned when a coercion is attempted between two
// variants the spec does not define a conversion for.
var ErrInvalidType = errors.New("invalid type")

// Item is the interface every stack item variant implements. Coercions are
// total for the declared source/target pairs in spec §3 and return
// ErrInvalidType otherwise.
type Item interface {
	fmt.Stringer
	// Type reports the variant tag.
	Type() Type
	// Dup returns the item to push when this item is duplicated on the
	// stack (DUP, PICK, ...). Array/Struct identity matters here: both
	// return themselves (aliasing); Struct deep-clones only on SETITEM.
	Dup() Item
	// Equals implements spec §3(ii): structural for Integer/Boolean/Buffer,
	// reference-based for Array/Struct/Object.
	Equals(other Item) bool
	AsBigInteger() (*big.Int, error)
	AsBool() (bool, error)
	AsBuffer() ([]byte, error)
	AsArray() ([]Item, error)
	// ToContractParameter projects the item into the serializable tree a
	// Notify action carries (spec §4.1).
	ToContractParameter() smartcontract.Parameter
}

// Make constructs the natural Item for a Go value, panicking for types it
// doesn't recognize; intended for fixture/test construction, not for
// decoding untrusted script bytes.
func Make(v any) Item {
	switch val := v.(type) {
	case Item:
		return val
	case bool:
		return NewBoolean(val)
	case int:
		return NewInteger(big.NewInt(int64(val)))
	case int64:
		return NewInteger(big.NewInt(val))
	case *big.Int:
		return NewInteger(val)
	case []byte:
		return NewBuffer(val)
	case string:
		return NewBuffer([]byte(val))
	case []Item:
		return NewArray(val)
	default:
		panic(fmt.Sprintf("stackitem.Make: unsupported type %T", v))
	}
}
