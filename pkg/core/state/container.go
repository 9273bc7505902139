// Package state defines the ledger entity types the VM's syscall catalogue
// reads and writes: blocks, headers, transactions and their components,
// accounts, assets, contracts, validators, and the actions a script emits.
//
// These types deliberately do not import pkg/vm/stackitem: stackitem's
// Object wrapper holds them as an opaque payload instead, keeping the
// dependency graph acyclic (stackitem -> state, never state -> stackitem).
package state

import "github.com/nspcc-dev/neo-go-classicvm/pkg/util"

// ContainerKind distinguishes the two script container shapes the VM can
// run against (spec §3, "Script container").
type ContainerKind byte

// The two script container kinds.
const (
	ContainerTransaction ContainerKind = iota
	ContainerBlock
)

// ScriptContainer is the variant `init.scriptContainer` (spec §3): either a
// Transaction or a Block, supplying the witness hash set and signed message
// that CHECKWITNESS/CHECKSIG/CHECKMULTISIG verify against.
type ScriptContainer interface {
	Kind() ContainerKind
	// Message returns the canonical pre-witness serialization that
	// signatures are computed over.
	Message() []byte
	// WitnessHashes returns the set of script hashes this container's
	// attached witnesses authenticate.
	WitnessHashes() []util.Uint160
}
