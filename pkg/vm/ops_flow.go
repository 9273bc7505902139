package vm

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/syscall"
)

func init() {
	register(opcode.NOP, defaultFee, 0, opNop)
	register(opcode.JMP, defaultFee, 0, opJmp)
	register(opcode.JMPIF, defaultFee, 0, opJmpIf)
	register(opcode.JMPIFNOT, defaultFee, 0, opJmpIfNot)
	register(opcode.CALL, defaultFee, 1, opCall)
	register(opcode.RET, defaultFee, 0, opRet)
	register(opcode.APPCALL, defaultFee, 1, opAppCall)
	register(opcode.TAILCALL, defaultFee, 0, opTailCall)
	register(opcode.SYSCALL, defaultFee, 0, opSyscall)

	register(opcode.TOALTSTACK, defaultFee, 0, opToAltStack)
	register(opcode.FROMALTSTACK, defaultFee, 0, opFromAltStack)
	register(opcode.DUPFROMALTSTACK, defaultFee, 0, opDupFromAltStack)
}

func opNop(e *Engine, ctx *Context) error { return nil }

// opJmp implements JMP: read the int16 LE offset and set PC to the -3
// adjusted target.
func opJmp(e *Engine, ctx *Context) error {
	target, err := readJumpTarget(ctx)
	if err != nil {
		return err
	}
	ctx.PC = target
	return nil
}

func opJmpIf(e *Engine, ctx *Context) error {
	return jmpConditional(ctx, true)
}

func opJmpIfNot(e *Engine, ctx *Context) error {
	return jmpConditional(ctx, false)
}

func jmpConditional(ctx *Context, wantTrue bool) error {
	target, err := readJumpTarget(ctx)
	if err != nil {
		return err
	}
	it, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := it.AsBool()
	if err != nil {
		return err
	}
	if b == wantTrue {
		ctx.PC = target
	}
	return nil
}

func readJumpTarget(ctx *Context) (uint32, error) {
	offset, err := ctx.readInt16LE()
	if err != nil {
		return 0, err
	}
	return jumpTarget(ctx.PC, offset)
}

// opCall implements CALL: JMP into a new frame at depth+1, returning to
// pc+2 (the two bytes of the offset already consumed by readJumpTarget).
func opCall(e *Engine, ctx *Context) error {
	target, err := readJumpTarget(ctx)
	if err != nil {
		return err
	}
	returnPC := ctx.PC
	e.pushScript(ctx, ctx.Code, ctx.ScriptHash, ctx.Depth+1)
	called := e.current()
	called.PC = target
	ctx.PC = returnPC
	return nil
}

func opRet(e *Engine, ctx *Context) error {
	ctx.Done = true
	return nil
}

// opAppCall implements APPCALL: load the contract at the following
// 20-byte hash and execute its script as a nested frame, adding one level
// of depth.
func opAppCall(e *Engine, ctx *Context) error {
	hash, err := readAppCallHash(ctx)
	if err != nil {
		return err
	}
	code, err := loadContractScript(ctx, hash)
	if err != nil {
		return err
	}
	e.pushScript(ctx, code, hash, ctx.Depth+1)
	return nil
}

// opTailCall implements TAILCALL: same as APPCALL but replaces the
// current frame instead of adding one, so the frame's eventual RET
// returns to whatever was below it.
func opTailCall(e *Engine, ctx *Context) error {
	hash, err := readAppCallHash(ctx)
	if err != nil {
		return err
	}
	code, err := loadContractScript(ctx, hash)
	if err != nil {
		return err
	}
	e.replaceScript(code, hash)
	return nil
}

func readAppCallHash(ctx *Context) (util.Uint160, error) {
	raw, err := ctx.readBytes(20)
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesLE(raw)
}

func loadContractScript(ctx *Context, hash util.Uint160) ([]byte, error) {
	c, err := ctx.Blockchain.GetContract(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, hash)
	}
	return c.Script, nil
}

// opSyscall implements SYSCALL: a 1-byte length prefix (≤ MaxSyscallNameLength)
// followed by that many ASCII bytes naming the operation to dispatch.
func opSyscall(e *Engine, ctx *Context) error {
	n, err := ctx.readByte()
	if err != nil {
		return err
	}
	if int(n) > MaxSyscallNameLength {
		return ErrUnknownSyscall
	}
	raw, err := ctx.readBytes(int(n))
	if err != nil {
		return err
	}
	fee, handler, err := syscall.Lookup(string(raw))
	if err != nil {
		if errors.Is(err, syscall.ErrUnknownSyscall) {
			return fmt.Errorf("%w: %s", ErrUnknownSyscall, raw)
		}
		return err
	}
	if ctx.GasLeft < fee {
		return ErrOutOfGas
	}
	ctx.GasLeft -= fee
	if e.metrics != nil {
		e.metrics.SyscallDispatched(string(raw))
	}
	return handler(ctx)
}

func opToAltStack(e *Engine, ctx *Context) error {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return err
	}
	ctx.StackAlt.Push(it)
	return nil
}

func opFromAltStack(e *Engine, ctx *Context) error {
	it, err := ctx.StackAlt.Pop()
	if err != nil {
		return err
	}
	ctx.Stack.Push(it)
	return nil
}

func opDupFromAltStack(e *Engine, ctx *Context) error {
	it, err := ctx.StackAlt.Peek(0)
	if err != nil {
		return err
	}
	ctx.Stack.Push(it.Dup())
	return nil
}
