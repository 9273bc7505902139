package vm

import "github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"

func init() {
	register(opcode.THROW, defaultFee, 0, opThrow)
	register(opcode.THROWIFNOT, defaultFee, 0, opThrowIfNot)
}

func opThrow(e *Engine, ctx *Context) error {
	return ErrThrow
}

func opThrowIfNot(e *Engine, ctx *Context) error {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := it.AsBool()
	if err != nil {
		return err
	}
	if !b {
		return ErrThrow
	}
	return nil
}
