package vm

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register(opcode.ARRAYSIZE, defaultFee, 0, opArraySize)
	register(opcode.PACK, defaultFee, 0, opPack)
	register(opcode.UNPACK, defaultFee, 0, opUnpack)
	register(opcode.PICKITEM, defaultFee, 0, opPickItem)
	register(opcode.SETITEM, defaultFee, 0, opSetItem)
	register(opcode.NEWARRAY, defaultFee, 0, opNewArray)
	register(opcode.NEWSTRUCT, defaultFee, 0, opNewStruct)
}

// collectionLen returns an item's element count for ARRAYSIZE: arrays and
// structs report their length, buffers their byte length (legacy scripts
// use ARRAYSIZE on both).
func collectionLen(it stackitem.Item) (int, error) {
	if arr, err := it.AsArray(); err == nil {
		return len(arr), nil
	}
	buf, err := it.AsBuffer()
	if err != nil {
		return 0, err
	}
	return len(buf), nil
}

func opArraySize(e *Engine, ctx *Context) error {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	n, err := collectionLen(it)
	if err != nil {
		return err
	}
	ctx.Stack.Push(stackitem.NewInteger(big.NewInt(int64(n))))
	return nil
}

func opPack(e *Engine, ctx *Context) error {
	n, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if n < 0 || n > MaxArraySize {
		return ErrInvalidPackCount
	}
	items := make([]stackitem.Item, n)
	for i := n - 1; i >= 0; i-- {
		it, err := ctx.Stack.Pop()
		if err != nil {
			return err
		}
		items[i] = it
	}
	ctx.Stack.Push(stackitem.NewArray(items))
	return nil
}

func opUnpack(e *Engine, ctx *Context) error {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	items, err := it.AsArray()
	if err != nil {
		return err
	}
	for i := len(items) - 1; i >= 0; i-- {
		ctx.Stack.Push(items[i])
	}
	ctx.Stack.Push(stackitem.NewInteger(big.NewInt(int64(len(items)))))
	return nil
}

func asIndexable(it stackitem.Item) (interface {
	Len() int
	At(int) (stackitem.Item, error)
	SetAt(int, stackitem.Item) error
}, bool) {
	switch v := it.(type) {
	case *stackitem.Array:
		return v, true
	case *stackitem.Struct:
		return v, true
	default:
		return nil, false
	}
}

func opPickItem(e *Engine, ctx *Context) error {
	idx, err := popIndex(ctx)
	if err != nil {
		return err
	}
	it, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	coll, ok := asIndexable(it)
	if !ok || idx < 0 {
		return ErrInvalidPickItem
	}
	v, err := coll.At(idx)
	if err != nil {
		return err
	}
	ctx.Stack.Push(v)
	return nil
}

// opSetItem implements SETITEM, cloning the value first when the target
// collection is a Struct and the value being stored is itself a Struct
// (spec §3(iii), §4.1): the clone happens here, at assignment time, not on
// ordinary duplication.
func opSetItem(e *Engine, ctx *Context) error {
	value, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	idx, err := popIndex(ctx)
	if err != nil {
		return err
	}
	it, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	coll, ok := asIndexable(it)
	if !ok || idx < 0 {
		return ErrInvalidSetItem
	}
	if _, isStruct := it.(*stackitem.Struct); isStruct {
		if inner, isInnerStruct := value.(*stackitem.Struct); isInnerStruct {
			value = inner.Clone()
		}
	}
	return coll.SetAt(idx, value)
}

func opNewArray(e *Engine, ctx *Context) error {
	n, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if n < 0 || n > MaxArraySize {
		return ErrInvalidPackCount
	}
	items := make([]stackitem.Item, n)
	for i := range items {
		items[i] = stackitem.NewBoolean(false)
	}
	ctx.Stack.Push(stackitem.NewArray(items))
	return nil
}

func opNewStruct(e *Engine, ctx *Context) error {
	n, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if n < 0 || n > MaxArraySize {
		return ErrInvalidPackCount
	}
	items := make([]stackitem.Item, n)
	for i := range items {
		items[i] = stackitem.NewBoolean(false)
	}
	ctx.Stack.Push(stackitem.NewStruct(items))
	return nil
}
