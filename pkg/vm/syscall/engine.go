package syscall

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register("Neo.ExecutionEngine.GetScriptContainer", 0, engineGetScriptContainer)
	register("Neo.ExecutionEngine.GetExecutingScriptHash", 0, engineGetExecutingScriptHash)
	register("Neo.ExecutionEngine.GetCallingScriptHash", 0, engineGetCallingScriptHash)
	register("Neo.ExecutionEngine.GetEntryScriptHash", 0, engineGetEntryScriptHash)

	alias("AntShares.ExecutionEngine.GetScriptContainer", "Neo.ExecutionEngine.GetScriptContainer")
	alias("AntShares.ExecutionEngine.GetExecutingScriptHash", "Neo.ExecutionEngine.GetExecutingScriptHash")
	alias("AntShares.ExecutionEngine.GetCallingScriptHash", "Neo.ExecutionEngine.GetCallingScriptHash")
	alias("AntShares.ExecutionEngine.GetEntryScriptHash", "Neo.ExecutionEngine.GetEntryScriptHash")
}

func engineGetScriptContainer(f Frame) error {
	container := f.Container()
	kind := stackitem.KindTransaction
	if container.Kind() == state.ContainerBlock {
		kind = stackitem.KindBlock
	}
	f.Push(stackitem.NewObject(kind, container))
	return nil
}

func engineGetExecutingScriptHash(f Frame) error {
	f.Push(stackitem.NewObject(stackitem.KindUint160, f.CurrentScriptHash()))
	return nil
}

func engineGetCallingScriptHash(f Frame) error {
	f.Push(stackitem.NewObject(stackitem.KindUint160, f.Caller()))
	return nil
}

func engineGetEntryScriptHash(f Frame) error {
	f.Push(stackitem.NewObject(stackitem.KindUint160, f.Entry()))
	return nil
}
