package vm

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register(opcode.PUSH0, defaultFee, 0, pushEmptyBuffer)
	register(opcode.PUSHM1, defaultFee, 0, pushInt(-1))
	for i := 1; i <= 16; i++ {
		register(opcode.Opcode(int(opcode.PUSH1)+i-1), defaultFee, 0, pushInt(int64(i)))
	}
	register(opcode.PUSHDATA1, defaultFee, 0, pushData(1))
	register(opcode.PUSHDATA2, defaultFee, 0, pushData(2))
	register(opcode.PUSHDATA4, defaultFee, 0, pushData(4))
}

func pushEmptyBuffer(e *Engine, ctx *Context) error {
	ctx.Stack.Push(stackitem.NewBuffer(nil))
	return nil
}

func pushInt(n int64) opHandler {
	return func(e *Engine, ctx *Context) error {
		ctx.Stack.Push(stackitem.NewInteger(big.NewInt(n)))
		return nil
	}
}

// pushBytesN implements PUSHBYTES1..75: copy N bytes after pc.
func pushBytesN(ctx *Context, n int) error {
	data, err := ctx.readBytes(n)
	if err != nil {
		return err
	}
	ctx.Stack.Push(stackitem.NewBuffer(data))
	return nil
}

// pushData implements PUSHDATA1/2/4: a lenBytes-byte little-endian length
// prefix followed by that many bytes.
func pushData(lenBytes int) opHandler {
	return func(e *Engine, ctx *Context) error {
		var n int
		switch lenBytes {
		case 1:
			b, err := ctx.readByte()
			if err != nil {
				return err
			}
			n = int(b)
		case 2:
			v, err := ctx.readUint16LE()
			if err != nil {
				return err
			}
			n = int(v)
		case 4:
			v, err := ctx.readUint32LE()
			if err != nil {
				return err
			}
			n = int(v)
		}
		if n > MaxItemSize {
			return ErrItemTooLarge
		}
		data, err := ctx.readBytes(n)
		if err != nil {
			return err
		}
		ctx.Stack.Push(stackitem.NewBuffer(data))
		return nil
	}
}
