package vm

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register(opcode.XDROP, defaultFee, 0, opXDrop)
	register(opcode.XSWAP, defaultFee, 0, opXSwap)
	register(opcode.XTUCK, defaultFee, 0, opXTuck)
	register(opcode.DEPTH, defaultFee, 0, opDepth)
	register(opcode.DROP, defaultFee, 0, opDrop)
	register(opcode.DUP, defaultFee, 0, opDup)
	register(opcode.NIP, defaultFee, 0, opNip)
	register(opcode.OVER, defaultFee, 0, opOver)
	register(opcode.PICK, defaultFee, 0, opPick)
	register(opcode.ROLL, defaultFee, 0, opRoll)
	register(opcode.ROT, defaultFee, 0, opRot)
	register(opcode.SWAP, defaultFee, 0, opSwap)
	register(opcode.TUCK, defaultFee, 0, opTuck)
}

func popIndex(ctx *Context) (int, error) {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return 0, err
	}
	n, err := it.AsBigInteger()
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

func opXDrop(e *Engine, ctx *Context) error {
	n, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrXDropNegative
	}
	_, err = ctx.Stack.Remove(n)
	return err
}

func opXSwap(e *Engine, ctx *Context) error {
	n, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrXSwapNegative
	}
	return ctx.Stack.Swap(0, n)
}

func opXTuck(e *Engine, ctx *Context) error {
	n, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrXTuckNegative
	}
	top, err := ctx.Stack.Peek(0)
	if err != nil {
		return err
	}
	return ctx.Stack.Insert(n, top)
}

func opDepth(e *Engine, ctx *Context) error {
	ctx.Stack.Push(stackitem.NewInteger(big.NewInt(int64(ctx.Stack.Len()))))
	return nil
}

func opDrop(e *Engine, ctx *Context) error {
	_, err := ctx.Stack.Pop()
	return err
}

func opDup(e *Engine, ctx *Context) error {
	it, err := ctx.Stack.Peek(0)
	if err != nil {
		return err
	}
	ctx.Stack.Push(it.Dup())
	return nil
}

func opNip(e *Engine, ctx *Context) error {
	_, err := ctx.Stack.Remove(1)
	return err
}

func opOver(e *Engine, ctx *Context) error {
	it, err := ctx.Stack.Peek(1)
	if err != nil {
		return err
	}
	ctx.Stack.Push(it.Dup())
	return nil
}

func opPick(e *Engine, ctx *Context) error {
	n, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrPickNegative
	}
	it, err := ctx.Stack.Peek(n)
	if err != nil {
		return err
	}
	ctx.Stack.Push(it.Dup())
	return nil
}

func opRoll(e *Engine, ctx *Context) error {
	n, err := popIndex(ctx)
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrRollNegative
	}
	if n == 0 {
		return nil
	}
	it, err := ctx.Stack.Remove(n)
	if err != nil {
		return err
	}
	ctx.Stack.Push(it)
	return nil
}

func opRot(e *Engine, ctx *Context) error {
	it, err := ctx.Stack.Remove(2)
	if err != nil {
		return err
	}
	ctx.Stack.Push(it)
	return nil
}

func opSwap(e *Engine, ctx *Context) error {
	return ctx.Stack.Swap(0, 1)
}

func opTuck(e *Engine, ctx *Context) error {
	top, err := ctx.Stack.Peek(0)
	if err != nil {
		return err
	}
	return ctx.Stack.Insert(1, top)
}
