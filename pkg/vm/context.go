package vm

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// Init is the immutable bundle an invocation tree is launched with: the
// script container signatures verify against and the trigger kind that
// gates which syscalls may mutate ledger state (spec §3).
type Init struct {
	ScriptContainer state.ScriptContainer
	Trigger         trigger.Type
}

// Context is the VM's execution context (spec §3, §4.2): the record
// threaded through the step function. Frames created by CALL/APPCALL share
// Stack, StackAlt, Actions and CreatedContracts with their caller by
// pointer, so side effects are visible across the call boundary exactly as
// spec §4.5 requires; PC, Done, Code, ScriptHash and Depth are
// frame-local.
type Context struct {
	Blockchain Blockchain
	Init       Init
	Engine     *Engine

	Code       []byte
	PushOnly   bool
	PC         uint32
	ScriptHash util.Uint160

	CallingScriptHash util.Uint160
	EntryScriptHash   util.Uint160
	Depth             uint32

	Stack    *Stack
	StackAlt *Stack

	Done    bool
	GasLeft util.Fixed8

	Actions          *state.ActionLog
	CreatedContracts map[util.Uint160]util.Uint160

	RunID  uuid.UUID
	Logger *zap.Logger
}

// derive builds the context for a nested invocation (CALL/APPCALL/
// TAILCALL/syscall-triggered contract call), sharing the mutable resources
// that must be visible across the call boundary.
func (c *Context) derive(code []byte, scriptHash util.Uint160, depth uint32) *Context {
	return &Context{
		Blockchain:        c.Blockchain,
		Init:              c.Init,
		Engine:            c.Engine,
		Code:              code,
		ScriptHash:        scriptHash,
		CallingScriptHash: c.ScriptHash,
		EntryScriptHash:   c.EntryScriptHash,
		Depth:             depth,
		Stack:             c.Stack,
		StackAlt:          c.StackAlt,
		GasLeft:           c.GasLeft,
		Actions:           c.Actions,
		CreatedContracts:  c.CreatedContracts,
		RunID:             c.RunID,
		Logger:            c.Logger,
	}
}
