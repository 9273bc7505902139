package vm

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register(opcode.INVERT, defaultFee, 0, opInvert)
	register(opcode.AND, defaultFee, 0, bitwiseBinOp(func(a, b []byte) []byte { return zipBytes(a, b, func(x, y byte) byte { return x & y }) }))
	register(opcode.OR, defaultFee, 0, bitwiseBinOp(func(a, b []byte) []byte { return zipBytes(a, b, func(x, y byte) byte { return x | y }) }))
	register(opcode.XOR, defaultFee, 0, bitwiseBinOp(func(a, b []byte) []byte { return zipBytes(a, b, func(x, y byte) byte { return x ^ y }) }))
	register(opcode.EQUAL, defaultFee, 0, opEqual)
}

// opInvert implements bitwise NOT over an item's canonical Buffer
// encoding, reinterpreted as an Integer afterward.
func opInvert(e *Engine, ctx *Context) error {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	n, err := it.AsBigInteger()
	if err != nil {
		return err
	}
	buf := bigint.ToBytes(n)
	inv := make([]byte, len(buf))
	for i, b := range buf {
		inv[i] = ^b
	}
	ctx.Stack.Push(stackitem.NewInteger(bigint.FromBytes(inv)))
	return nil
}

// bitwiseBinOp implements AND/OR/XOR: operate byte-for-byte over the two
// operands' canonical Buffer encodings, zero-extended to the longer
// operand's length, reinterpreted as an Integer afterward.
func bitwiseBinOp(op func(a, b []byte) []byte) opHandler {
	return func(e *Engine, ctx *Context) error {
		b, err := ctx.Stack.Pop()
		if err != nil {
			return err
		}
		a, err := ctx.Stack.Pop()
		if err != nil {
			return err
		}
		an, err := a.AsBigInteger()
		if err != nil {
			return err
		}
		bn, err := b.AsBigInteger()
		if err != nil {
			return err
		}
		result := op(bigint.ToBytes(an), bigint.ToBytes(bn))
		ctx.Stack.Push(stackitem.NewInteger(bigint.FromBytes(result)))
		return nil
	}
}

func zipBytes(a, b []byte, op func(x, y byte) byte) []byte {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var x, y byte
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		out[i] = op(x, y)
	}
	return out
}

func opEqual(e *Engine, ctx *Context) error {
	b, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	a, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	ctx.Stack.Push(stackitem.NewBoolean(a.Equals(b)))
	return nil
}
