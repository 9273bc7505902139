package vm

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/metrics"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
)

// Options customizes a single ExecuteScript invocation.
type Options struct {
	// ScriptHash, if set, becomes the new context's CallingScriptHash
	// (used when a syscall or host process launches a script on behalf of
	// an existing one).
	ScriptHash *util.Uint160
	Logger     *zap.Logger
	Metrics    *metrics.Collector
}

// Engine runs one invocation tree to completion. It is not safe for
// concurrent use by multiple goroutines over the same run, matching the
// single-threaded, cooperative model of spec §5.
type Engine struct {
	frames  []*Context
	metrics *metrics.Collector
}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ExecuteScript builds the initial context for code and runs it to
// completion (spec §4.5).
func (e *Engine) ExecuteScript(code []byte, bc Blockchain, init Init, gasLeft util.Fixed8, opts *Options) (*Context, State, error) {
	ctx, err := e.Load(code, bc, init, gasLeft, opts)
	if err != nil {
		return nil, FAULT, err
	}
	st, err := e.run()
	return ctx, st, err
}

// Load builds the initial context for code without running it, so a
// debugger can single-step it with StepOne.
func (e *Engine) Load(code []byte, bc Blockchain, init Init, gasLeft util.Fixed8, opts *Options) (*Context, error) {
	if len(code) > MaxScriptLength {
		return nil, ErrScriptTooLarge
	}
	scriptHash := util.Uint160FromScript(code)
	ctx := &Context{
		Blockchain:       bc,
		Init:             init,
		Engine:           e,
		Code:             code,
		PC:               0,
		ScriptHash:       scriptHash,
		EntryScriptHash:  scriptHash,
		Depth:            1,
		Stack:            NewStack(),
		StackAlt:         NewStack(),
		GasLeft:          gasLeft,
		Actions:          state.NewActionLog(),
		CreatedContracts: map[util.Uint160]util.Uint160{},
		RunID:            uuid.New(),
	}
	if opts != nil {
		if opts.ScriptHash != nil {
			ctx.CallingScriptHash = *opts.ScriptHash
		}
		ctx.Logger = opts.Logger
		e.metrics = opts.Metrics
	}
	e.frames = []*Context{ctx}
	return ctx, nil
}

// StepOne executes a single opcode of the frame on top of the stack,
// popping exhausted frames before and after it. It reports the resulting
// state: NONE if execution should continue, HALT if the invocation tree is
// complete, or FAULT (with the causing error) otherwise.
func (e *Engine) StepOne() (State, error) {
	for len(e.frames) > 0 {
		ctx := e.frames[len(e.frames)-1]
		if int(ctx.PC) >= len(ctx.Code) {
			ctx.Done = true
		}
		if ctx.Done {
			e.frames = e.frames[:len(e.frames)-1]
			continue
		}
		if err := e.step(ctx); err != nil {
			if ctx.Logger != nil {
				ctx.Logger.Debug("script fault", zap.Error(err), zap.Stringer("scriptHash", ctx.ScriptHash))
			}
			return FAULT, err
		}
		for len(e.frames) > 0 {
			top := e.frames[len(e.frames)-1]
			if !top.Done && int(top.PC) < len(top.Code) {
				return NONE, nil
			}
			e.frames = e.frames[:len(e.frames)-1]
		}
		return HALT, nil
	}
	return HALT, nil
}

// Current returns the frame currently executing, or nil if the invocation
// tree has finished.
func (e *Engine) Current() *Context {
	return e.current()
}

// run drives the frame stack to completion: HALT when the last frame's
// script runs off the end or RETs, FAULT on the first unrecovered error.
func (e *Engine) run() (State, error) {
	for len(e.frames) > 0 {
		ctx := e.frames[len(e.frames)-1]
		if int(ctx.PC) >= len(ctx.Code) {
			ctx.Done = true
		}
		if ctx.Done {
			e.frames = e.frames[:len(e.frames)-1]
			continue
		}
		if err := e.step(ctx); err != nil {
			if ctx.Logger != nil {
				ctx.Logger.Debug("script fault", zap.Error(err), zap.Stringer("scriptHash", ctx.ScriptHash))
			}
			return FAULT, err
		}
	}
	return HALT, nil
}

// current returns the frame currently executing.
func (e *Engine) current() *Context {
	if len(e.frames) == 0 {
		return nil
	}
	return e.frames[len(e.frames)-1]
}

// step decodes and executes one opcode on ctx (spec §4.3's per-step
// invariants, in order).
func (e *Engine) step(ctx *Context) error {
	op, err := ctx.readByte()
	if err != nil {
		return err
	}
	code := opcode.Opcode(op)

	if ctx.PushOnly && !(code <= opcode.PUSH16 || code == opcode.RET) {
		return fmt.Errorf("%w: %s", ErrPushOnlyViolation, code)
	}

	if opcode.PUSHBYTES1 <= code && code <= opcode.PUSHBYTES75 {
		return pushBytesN(ctx, int(code))
	}

	d, ok := dispatchTable[code]
	if !ok {
		return fmt.Errorf("%w: 0x%02x", ErrUnknownOp, op)
	}

	if ctx.GasLeft < d.fee {
		return ErrOutOfGas
	}
	ctx.GasLeft -= d.fee

	if d.invocation > 0 && int(ctx.Depth)+d.invocation > MaxInvocationStackSize {
		return ErrInvocationStackOverflow
	}

	if e.metrics != nil {
		e.metrics.OpcodeExecuted(code.String())
		e.metrics.GasConsumed(d.fee)
	}

	if err := d.handler(e, ctx); err != nil {
		return err
	}

	if ctx.Stack.Len()+ctx.StackAlt.Len() > MaxStackSize {
		return ErrStackOverflow
	}
	return nil
}

// pushScript pushes a new frame for an APPCALL/CALL target; the caller is
// responsible for the depth bookkeeping appropriate to the opcode.
func (e *Engine) pushScript(ctx *Context, code []byte, scriptHash util.Uint160, depth uint32) {
	e.frames = append(e.frames, ctx.derive(code, scriptHash, depth))
}

// replaceScript implements TAILCALL: the current frame is replaced in
// place rather than pushed, so its eventual RET returns to whatever is
// below the replaced frame.
func (e *Engine) replaceScript(code []byte, scriptHash util.Uint160) {
	ctx := e.current()
	e.frames[len(e.frames)-1] = ctx.derive(code, scriptHash, ctx.Depth)
}
