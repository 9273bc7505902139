package stackitem

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
)

// ObjectKind tags the ledger-entity type an Object wraps.
type ObjectKind byte

// The set of opaque object wrappers the spec names (§3).
const (
	KindBlock ObjectKind = iota
	KindHeader
	KindTransaction
	KindInput
	KindOutput
	KindAttribute
	KindAccount
	KindAsset
	KindContract
	KindValidator
	KindECPoint
	KindUint160
	KindUint256
	KindStorageContext
)

// bufferer is implemented by payloads that support the Buffer coercion,
// e.g. util.Uint160/Uint256 and keys.PublicKey.
type bufferer interface {
	Bytes() []byte
}

// Object is an opaque wrapper for a ledger entity or crypto value. Its
// payload is untyped (any) so this package never imports pkg/core/state,
// keeping the dependency graph acyclic — callers that need the concrete
// type assert on Value() themselves.
type Object struct {
	kind  ObjectKind
	value any
}

// NewObject wraps value under kind.
func NewObject(kind ObjectKind, value any) *Object {
	return &Object{kind: kind, value: value}
}

// Type implements the Item interface.
func (o *Object) Type() Type { return ObjectT }

// Kind reports which ledger entity o wraps.
func (o *Object) Kind() ObjectKind { return o.kind }

// Value returns the wrapped payload for the caller to type-assert.
func (o *Object) Value() any { return o.value }

// String implements the fmt.Stringer interface.
func (o *Object) String() string { return fmt.Sprintf("InteropInterface(%T)", o.value) }

// Dup implements the Item interface; objects alias like Array.
func (o *Object) Dup() Item { return o }

// Equals implements the Item interface: reference equality for Object.
func (o *Object) Equals(other Item) bool {
	p, ok := other.(*Object)
	return ok && p == o
}

// AsBigInteger implements the Item interface; no Object variant supports it.
func (o *Object) AsBigInteger() (*big.Int, error) { return nil, ErrInvalidType }

// AsBool implements the Item interface: a present object is truthy.
func (o *Object) AsBool() (bool, error) { return o.value != nil, nil }

// AsBuffer implements the Item interface for payloads that expose Bytes()
// (ECPoint, UInt160, UInt256); other kinds fail with ErrInvalidType.
func (o *Object) AsBuffer() ([]byte, error) {
	if b, ok := o.value.(bufferer); ok {
		return b.Bytes(), nil
	}
	return nil, ErrInvalidType
}

// AsArray implements the Item interface; Object has no array coercion.
func (o *Object) AsArray() ([]Item, error) { return nil, ErrInvalidType }

// ToContractParameter implements the Item interface. Hash/PublicKey-shaped
// objects project to a ByteArray; anything else projects to an opaque
// interop parameter carrying no externally visible value.
func (o *Object) ToContractParameter() smartcontract.Parameter {
	if b, ok := o.value.(bufferer); ok {
		return smartcontract.NewByteArrayParameter(b.Bytes())
	}
	return smartcontract.Parameter{Type: smartcontract.InteropType}
}
