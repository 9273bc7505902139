// Package syscall implements the VM's system-call catalogue (spec §4.4):
// the named operations a SYSCALL opcode dispatches to, resolved through a
// legacy alias table and a perfect-hash-backed name lookup.
package syscall

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/ledger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

// Frame is the minimal capability surface a syscall handler needs from the
// currently executing VM context. It is declared here, rather than syscall
// handlers depending on *vm.Context directly, to avoid an import cycle:
// pkg/vm calls into pkg/vm/syscall to dispatch SYSCALL, so pkg/vm/syscall
// cannot import pkg/vm back. *vm.Context implements this interface.
type Frame interface {
	Pop() (stackitem.Item, error)
	Push(stackitem.Item)
	PopAlt() (stackitem.Item, error)
	PushAlt(stackitem.Item)

	CurrentScriptHash() util.Uint160
	Caller() util.Uint160
	Entry() util.Uint160

	Chain() ledger.Chain
	Container() state.ScriptContainer
	Trigger() trigger.Type

	Notify(args []smartcontract.Parameter) uint32
	Log(message string) uint32

	Created() map[util.Uint160]util.Uint160
}
