package vm

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/ledger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

// This file adapts *Context to syscall.Frame, the narrow capability
// surface the syscall catalogue dispatches against. Methods here are named
// to avoid colliding with Context's own fields (ScriptHash, etc).

// Pop implements syscall.Frame.
func (c *Context) Pop() (stackitem.Item, error) { return c.Stack.Pop() }

// Push implements syscall.Frame.
func (c *Context) Push(it stackitem.Item) { c.Stack.Push(it) }

// PopAlt implements syscall.Frame.
func (c *Context) PopAlt() (stackitem.Item, error) { return c.StackAlt.Pop() }

// PushAlt implements syscall.Frame.
func (c *Context) PushAlt(it stackitem.Item) { c.StackAlt.Push(it) }

// CurrentScriptHash implements syscall.Frame.
func (c *Context) CurrentScriptHash() util.Uint160 { return c.ScriptHash }

// Caller implements syscall.Frame.
func (c *Context) Caller() util.Uint160 { return c.CallingScriptHash }

// Entry implements syscall.Frame.
func (c *Context) Entry() util.Uint160 { return c.EntryScriptHash }

// Chain implements syscall.Frame.
func (c *Context) Chain() ledger.Chain { return c.Blockchain }

// Container implements syscall.Frame.
func (c *Context) Container() state.ScriptContainer { return c.Init.ScriptContainer }

// Trigger implements syscall.Frame.
func (c *Context) Trigger() trigger.Type { return c.Init.Trigger }

// Notify implements syscall.Frame.
func (c *Context) Notify(args []smartcontract.Parameter) uint32 {
	return c.Actions.AppendNotification(c.ScriptHash, args)
}

// Log implements syscall.Frame.
func (c *Context) Log(message string) uint32 {
	return c.Actions.AppendLog(c.ScriptHash, message)
}

// Created implements syscall.Frame.
func (c *Context) Created() map[util.Uint160]util.Uint160 {
	return c.CreatedContracts
}
