package vm

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register(opcode.CAT, defaultFee, 0, opCat)
	register(opcode.SUBSTR, defaultFee, 0, opSubstr)
	register(opcode.LEFT, defaultFee, 0, opLeft)
	register(opcode.RIGHT, defaultFee, 0, opRight)
	register(opcode.SIZE, defaultFee, 0, opSize)
}

func opCat(e *Engine, ctx *Context) error {
	b, err := popBuffer(ctx)
	if err != nil {
		return err
	}
	a, err := popBuffer(ctx)
	if err != nil {
		return err
	}
	if len(a)+len(b) > MaxItemSize {
		return ErrItemTooLarge
	}
	ctx.Stack.Push(stackitem.NewBuffer(append(append([]byte{}, a...), b...)))
	return nil
}

func opSubstr(e *Engine, ctx *Context) error {
	end, err := popIndex(ctx)
	if err != nil {
		return err
	}
	start, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if start < 0 || end < 0 {
		return ErrSubstrNegative
	}
	buf, err := popBuffer(ctx)
	if err != nil {
		return err
	}
	if start > len(buf) || start+end > len(buf) {
		return ErrInvalidIndex
	}
	ctx.Stack.Push(stackitem.NewBuffer(buf[start : start+end]))
	return nil
}

func opLeft(e *Engine, ctx *Context) error {
	n, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrLeftNegative
	}
	buf, err := popBuffer(ctx)
	if err != nil {
		return err
	}
	if n > len(buf) {
		return ErrInvalidIndex
	}
	ctx.Stack.Push(stackitem.NewBuffer(buf[:n]))
	return nil
}

func opRight(e *Engine, ctx *Context) error {
	n, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrRightNegative
	}
	buf, err := popBuffer(ctx)
	if err != nil {
		return err
	}
	if n > len(buf) {
		return ErrRightLength
	}
	ctx.Stack.Push(stackitem.NewBuffer(buf[len(buf)-n:]))
	return nil
}

func opSize(e *Engine, ctx *Context) error {
	buf, err := popBuffer(ctx)
	if err != nil {
		return err
	}
	ctx.Stack.Push(stackitem.NewInteger(big.NewInt(int64(len(buf)))))
	return nil
}

func popBuffer(ctx *Context) ([]byte, error) {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return nil, err
	}
	return it.AsBuffer()
}
