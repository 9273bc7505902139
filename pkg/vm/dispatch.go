package vm

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
)

// opHandler implements one opcode's behavior against the currently
// executing frame. It is responsible for its own stack popping (reporting
// ErrStackUnderflow via Stack.Pop/Peek) since several opcodes (PICK, ROLL,
// CHECKMULTISIG, PACK) have argument counts that depend on the arguments
// themselves and can't be declared statically.
type opHandler func(e *Engine, ctx *Context) error

// descriptor is the per-opcode entry of spec §4.3: a gas fee, an
// invocation-stack delta (nonzero only for CALL/APPCALL), and the handler.
type descriptor struct {
	fee        util.Fixed8
	invocation int
	handler    opHandler
}

var dispatchTable = map[opcode.Opcode]*descriptor{}

// register adds an opcode's descriptor to the dispatch table; called from
// each ops_*.go file's init().
func register(op opcode.Opcode, fee util.Fixed8, invocation int, h opHandler) {
	dispatchTable[op] = &descriptor{fee: fee, invocation: invocation, handler: h}
}
