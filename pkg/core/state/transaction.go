package state

import "github.com/nspcc-dev/neo-go-classicvm/pkg/util"

// AttributeUsage is the tag of a transaction attribute.
type AttributeUsage byte

// A representative subset of attribute usages the syscall catalogue
// surfaces via Attribute.GetUsage/GetData.
const (
	AttrScript      AttributeUsage = 0x20
	AttrDescription AttributeUsage = 0x90
	AttrRemark      AttributeUsage = 0xF0
)

// Attribute is metadata attached to a transaction.
type Attribute struct {
	Usage AttributeUsage
	Data  []byte
}

// Input references the output of a prior transaction being spent.
type Input struct {
	PrevHash  util.Uint256
	PrevIndex uint16
}

// Output is a single (asset, value, recipient) entry of a transaction.
type Output struct {
	AssetID    util.Uint256
	Value      util.Fixed8
	ScriptHash util.Uint160
}

// TransactionType tags the kind of transaction (spec treats this as opaque
// data the Transaction.GetType syscall surfaces).
type TransactionType byte

// Transaction types the syscall catalogue can report.
const (
	MinerTransaction      TransactionType = 0x00
	IssueTransaction      TransactionType = 0x01
	ClaimTransaction      TransactionType = 0x02
	EnrollmentTransaction TransactionType = 0x20
	RegisterTransaction   TransactionType = 0x40
	ContractTransaction   TransactionType = 0x80
	InvocationTransaction TransactionType = 0xD1
)

// Witness is a signature/verification-script pair attached to a
// transaction or block.
type Witness struct {
	InvocationScript   []byte
	VerificationScript []byte
}

// ScriptHash computes the script hash this witness authenticates.
func (w Witness) ScriptHash() util.Uint160 {
	return util.Uint160FromScript(w.VerificationScript)
}

// Transaction is the VM's view of a blockchain transaction: everything the
// Transaction/Input/Output/Attribute syscall groups read.
type Transaction struct {
	Hash       util.Uint256
	Type       TransactionType
	Attributes []Attribute
	Inputs     []Input
	Outputs    []Output
	Witnesses  []Witness
	// RawMessage is the canonical pre-witness serialization signatures are
	// computed over (spec §9, "Signature verification message").
	RawMessage []byte
}

// Kind implements the ScriptContainer interface.
func (t *Transaction) Kind() ContainerKind { return ContainerTransaction }

// Message implements the ScriptContainer interface.
func (t *Transaction) Message() []byte { return t.RawMessage }

// WitnessHashes implements the ScriptContainer interface.
func (t *Transaction) WitnessHashes() []util.Uint160 {
	hashes := make([]util.Uint160, len(t.Witnesses))
	for i, w := range t.Witnesses {
		hashes[i] = w.ScriptHash()
	}
	return hashes
}

// References resolves each Input to the Output it spends, in the same
// order as Inputs; entries with no resolvable prior output are the zero
// Output (callers needing strict validation check against the ledger
// facade directly).
func (t *Transaction) References(resolve func(Input) (Output, bool)) []Output {
	refs := make([]Output, len(t.Inputs))
	for i, in := range t.Inputs {
		if out, ok := resolve(in); ok {
			refs[i] = out
		}
	}
	return refs
}
