package stackitem

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/io"
)

// ErrUnserializable is returned for variants the wire format has no
// encoding for: Object carries a live Go value, not serializable state.
var ErrUnserializable = errors.New("item is not serializable")

// MaxSerializedArraySize bounds the element count of each array or struct
// Deserialize will accept, guarding against crafted input building
// unbounded trees. Serialize does not check it.
const MaxSerializedArraySize = 1024

// Serialize encodes item into the wire format DUMP/restore and contract
// storage values use for structured items.
func Serialize(item Item) ([]byte, error) {
	w := io.NewBufBinWriter()
	EncodeBinary(item, w.BinWriter)
	if w.Err != nil {
		return nil, w.Err
	}
	return w.Bytes(), nil
}

// EncodeBinary writes item's wire encoding to w.
func EncodeBinary(item Item, w *io.BinWriter) {
	switch v := item.(type) {
	case *Boolean:
		w.WriteB(byte(BooleanT))
		w.WriteBool(bool(*v))
	case *Integer:
		w.WriteB(byte(IntegerT))
		n, _ := v.AsBigInteger()
		w.WriteVarBytes(bigint.ToBytes(n))
	case *Buffer:
		w.WriteB(byte(BufferT))
		w.WriteVarBytes(*v)
	case *Array:
		w.WriteB(byte(ArrayT))
		w.WriteVarUint(uint64(v.Len()))
		for _, it := range v.items {
			EncodeBinary(it, w)
		}
	case *Struct:
		w.WriteB(byte(StructT))
		w.WriteVarUint(uint64(v.Len()))
		for _, it := range v.items {
			EncodeBinary(it, w)
		}
	default:
		if w.Err == nil {
			w.Err = fmt.Errorf("%w: %T", ErrUnserializable, item)
		}
	}
}

// Deserialize decodes an Item from its wire encoding.
func Deserialize(data []byte) (Item, error) {
	r := io.NewBinReaderFromBuf(data)
	item := DecodeBinary(r)
	if r.Err != nil {
		return nil, r.Err
	}
	return item, nil
}

// DecodeBinary reads an Item from r, mirroring EncodeBinary.
func DecodeBinary(r *io.BinReader) Item {
	if r.Err != nil {
		return nil
	}
	t := Type(r.ReadB())
	switch t {
	case BooleanT:
		return NewBoolean(r.ReadBool())
	case IntegerT:
		data := r.ReadVarBytes(32)
		return NewInteger(bigint.FromBytes(data))
	case BufferT:
		return NewBuffer(r.ReadVarBytes())
	case ArrayT, StructT:
		n := r.ReadVarUint()
		if n > MaxSerializedArraySize {
			r.Err = fmt.Errorf("array of %d items exceeds the serialization limit", n)
			return nil
		}
		items := make([]Item, n)
		for i := range items {
			items[i] = DecodeBinary(r)
		}
		if t == StructT {
			return NewStruct(items)
		}
		return NewArray(items)
	default:
		if r.Err == nil {
			r.Err = fmt.Errorf("%w: unknown type tag %d", ErrUnserializable, t)
		}
		return nil
	}
}
