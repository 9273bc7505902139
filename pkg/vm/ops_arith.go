package vm

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register(opcode.INC, defaultFee, 0, unaryInt(func(n *big.Int) *big.Int { return new(big.Int).Add(n, big.NewInt(1)) }))
	register(opcode.DEC, defaultFee, 0, unaryInt(func(n *big.Int) *big.Int { return new(big.Int).Sub(n, big.NewInt(1)) }))
	register(opcode.SIGN, defaultFee, 0, opSign)
	register(opcode.NEGATE, defaultFee, 0, unaryInt(func(n *big.Int) *big.Int { return new(big.Int).Neg(n) }))
	register(opcode.ABS, defaultFee, 0, unaryInt(func(n *big.Int) *big.Int { return new(big.Int).Abs(n) }))
	register(opcode.NOT, defaultFee, 0, opNot)
	register(opcode.NZ, defaultFee, 0, opNz)

	register(opcode.ADD, defaultFee, 0, binaryInt(func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }))
	register(opcode.SUB, defaultFee, 0, binaryInt(func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }))
	register(opcode.MUL, defaultFee, 0, binaryInt(func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }))
	register(opcode.DIV, defaultFee, 0, binaryIntErr(intQuo))
	register(opcode.MOD, defaultFee, 0, binaryIntErr(intRem))
	register(opcode.SHL, defaultFee, 0, binaryInt(func(a, b *big.Int) *big.Int { return new(big.Int).Lsh(a, uint(b.Int64())) }))
	register(opcode.SHR, defaultFee, 0, binaryInt(func(a, b *big.Int) *big.Int { return new(big.Int).Rsh(a, uint(b.Int64())) }))

	register(opcode.BOOLAND, defaultFee, 0, binaryBool(func(a, b bool) bool { return a && b }))
	register(opcode.BOOLOR, defaultFee, 0, binaryBool(func(a, b bool) bool { return a || b }))
	register(opcode.NUMEQUAL, defaultFee, 0, binaryCompare(func(c int) bool { return c == 0 }))
	register(opcode.NUMNOTEQUAL, defaultFee, 0, binaryCompare(func(c int) bool { return c != 0 }))
	register(opcode.LT, defaultFee, 0, binaryCompare(func(c int) bool { return c < 0 }))
	register(opcode.GT, defaultFee, 0, binaryCompare(func(c int) bool { return c > 0 }))
	register(opcode.LTE, defaultFee, 0, binaryCompare(func(c int) bool { return c <= 0 }))
	register(opcode.GTE, defaultFee, 0, binaryCompare(func(c int) bool { return c >= 0 }))
	register(opcode.MIN, defaultFee, 0, binaryInt(func(a, b *big.Int) *big.Int {
		if a.Cmp(b) <= 0 {
			return a
		}
		return b
	}))
	register(opcode.MAX, defaultFee, 0, binaryInt(func(a, b *big.Int) *big.Int {
		if a.Cmp(b) >= 0 {
			return a
		}
		return b
	}))
	register(opcode.WITHIN, defaultFee, 0, opWithin)
}

func popInt(ctx *Context) (*big.Int, error) {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return nil, err
	}
	return it.AsBigInteger()
}

func unaryInt(fn func(*big.Int) *big.Int) opHandler {
	return func(e *Engine, ctx *Context) error {
		n, err := popInt(ctx)
		if err != nil {
			return err
		}
		ctx.Stack.Push(stackitem.NewInteger(fn(n)))
		return nil
	}
}

func binaryInt(fn func(a, b *big.Int) *big.Int) opHandler {
	return func(e *Engine, ctx *Context) error {
		b, err := popInt(ctx)
		if err != nil {
			return err
		}
		a, err := popInt(ctx)
		if err != nil {
			return err
		}
		ctx.Stack.Push(stackitem.NewInteger(fn(a, b)))
		return nil
	}
}

func binaryIntErr(fn func(a, b *big.Int) (*big.Int, error)) opHandler {
	return func(e *Engine, ctx *Context) error {
		b, err := popInt(ctx)
		if err != nil {
			return err
		}
		a, err := popInt(ctx)
		if err != nil {
			return err
		}
		result, err := fn(a, b)
		if err != nil {
			return err
		}
		ctx.Stack.Push(stackitem.NewInteger(result))
		return nil
	}
}

func intQuo(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrInvalidType
	}
	return new(big.Int).Quo(a, b), nil
}

func intRem(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrInvalidType
	}
	return new(big.Int).Rem(a, b), nil
}

func opSign(e *Engine, ctx *Context) error {
	n, err := popInt(ctx)
	if err != nil {
		return err
	}
	ctx.Stack.Push(stackitem.NewInteger(big.NewInt(int64(n.Sign()))))
	return nil
}

func opNot(e *Engine, ctx *Context) error {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := it.AsBool()
	if err != nil {
		return err
	}
	ctx.Stack.Push(stackitem.NewBoolean(!b))
	return nil
}

func opNz(e *Engine, ctx *Context) error {
	n, err := popInt(ctx)
	if err != nil {
		return err
	}
	ctx.Stack.Push(stackitem.NewBoolean(n.Sign() != 0))
	return nil
}

func popBool(ctx *Context) (bool, error) {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return false, err
	}
	return it.AsBool()
}

func binaryBool(fn func(a, b bool) bool) opHandler {
	return func(e *Engine, ctx *Context) error {
		b, err := popBool(ctx)
		if err != nil {
			return err
		}
		a, err := popBool(ctx)
		if err != nil {
			return err
		}
		ctx.Stack.Push(stackitem.NewBoolean(fn(a, b)))
		return nil
	}
}

func binaryCompare(fn func(cmp int) bool) opHandler {
	return func(e *Engine, ctx *Context) error {
		b, err := popInt(ctx)
		if err != nil {
			return err
		}
		a, err := popInt(ctx)
		if err != nil {
			return err
		}
		ctx.Stack.Push(stackitem.NewBoolean(fn(a.Cmp(b))))
		return nil
	}
}

func opWithin(e *Engine, ctx *Context) error {
	b, err := popInt(ctx)
	if err != nil {
		return err
	}
	a, err := popInt(ctx)
	if err != nil {
		return err
	}
	x, err := popInt(ctx)
	if err != nil {
		return err
	}
	ctx.Stack.Push(stackitem.NewBoolean(a.Cmp(x) <= 0 && x.Cmp(b) < 0))
	return nil
}
