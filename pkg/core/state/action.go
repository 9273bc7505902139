package state

import (
	json "github.com/nspcc-dev/go-ordered-json"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// ActionKind distinguishes the two action shapes a script can emit
// (spec §6, "Emitted actions").
type ActionKind byte

// The two action kinds.
const (
	ActionKindLog ActionKind = iota
	ActionNotification
)

// Action is the common envelope for a Log or Notification emission,
// ordered by (BlockIndex, TransactionIndex, Index) per spec §5. It
// intentionally depends only on smartcontract.Parameter, never on
// pkg/vm/stackitem, so the action log can be serialized and stored
// independently of live VM state.
type Action struct {
	Kind             ActionKind
	BlockIndex       uint32
	BlockHash        util.Uint256
	TransactionIndex int32
	TransactionHash  util.Uint256
	Index            uint32
	ScriptHash       util.Uint160
	// Message carries the UTF-8 string for a Log action.
	Message string
	// Args carries the contract-parameter tree for a Notification action.
	Args []smartcontract.Parameter
}

type actionJSON struct {
	Kind             string                    `json:"kind"`
	BlockIndex       uint32                    `json:"blockindex"`
	BlockHash        string                    `json:"blockhash"`
	TransactionIndex int32                     `json:"txindex"`
	TransactionHash  string                    `json:"txhash"`
	Index            uint32                    `json:"index"`
	ScriptHash       string                    `json:"scripthash"`
	Message          string                    `json:"message,omitempty"`
	Args             []smartcontract.Parameter `json:"args,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface, using the
// order-preserving encoder the rest of the ledger facade's JSON export
// uses so field order in exported action logs is stable across runs.
func (a Action) MarshalJSON() ([]byte, error) {
	kind := "Log"
	if a.Kind == ActionNotification {
		kind = "Notification"
	}
	return json.Marshal(actionJSON{
		Kind:             kind,
		BlockIndex:       a.BlockIndex,
		BlockHash:        "0x" + a.BlockHash.StringBE(),
		TransactionIndex: a.TransactionIndex,
		TransactionHash:  "0x" + a.TransactionHash.StringBE(),
		Index:            a.Index,
		ScriptHash:       "0x" + a.ScriptHash.StringBE(),
		Message:          a.Message,
		Args:             a.Args,
	})
}

// ActionLog accumulates actions for a single invocation tree, assigning
// strictly increasing Index values (spec §8, testable property 9).
type ActionLog struct {
	actions []Action
	next    uint32
}

// NewActionLog returns an empty ActionLog.
func NewActionLog() *ActionLog {
	return &ActionLog{}
}

// AppendLog appends a Log action and returns its assigned index.
func (l *ActionLog) AppendLog(scriptHash util.Uint160, message string) uint32 {
	idx := l.next
	l.next++
	l.actions = append(l.actions, Action{
		Kind:       ActionKindLog,
		Index:      idx,
		ScriptHash: scriptHash,
		Message:    message,
	})
	return idx
}

// AppendNotification appends a Notification action and returns its
// assigned index.
func (l *ActionLog) AppendNotification(scriptHash util.Uint160, args []smartcontract.Parameter) uint32 {
	idx := l.next
	l.next++
	l.actions = append(l.actions, Action{
		Kind:       ActionNotification,
		Index:      idx,
		ScriptHash: scriptHash,
		Args:       args,
	})
	return idx
}

// Actions returns all actions appended so far, in emission order.
func (l *ActionLog) Actions() []Action { return l.actions }
