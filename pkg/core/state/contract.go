package state

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// Contract is a deployed smart contract: its script plus the ABI and
// metadata the syscall catalogue's Contract.* group surfaces.
type Contract struct {
	Script      []byte
	ParamList   []smartcontract.ParamType
	ReturnType  smartcontract.ParamType
	HasStorage  bool
	Name        string
	Version     string
	Author      string
	Email       string
	Description string
}

// ScriptHash computes the contract's script hash, its identity in the
// ledger facade's contract collection.
func (c *Contract) ScriptHash() util.Uint160 {
	return util.Uint160FromScript(c.Script)
}
