package state

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// Account is a ledger account: a script hash, its votes for validators,
// and its per-asset balances.
type Account struct {
	ScriptHash util.Uint160
	IsFrozen   bool
	Votes      []*keys.PublicKey
	Balances   map[util.Uint256]util.Fixed8
}

// NewAccount returns an empty Account for hash.
func NewAccount(hash util.Uint160) *Account {
	return &Account{ScriptHash: hash, Balances: map[util.Uint256]util.Fixed8{}}
}

// Balance returns the account's balance of asset, or 0 if it holds none.
func (a *Account) Balance(asset util.Uint256) util.Fixed8 {
	return a.Balances[asset]
}

// IsDeletable reports whether the account carries no state worth keeping:
// not frozen, no votes, and every balance is non-positive (spec §4.4,
// Account.SetVotes deletion rule).
func (a *Account) IsDeletable() bool {
	if a.IsFrozen || len(a.Votes) > 0 {
		return false
	}
	for _, v := range a.Balances {
		if v > 0 {
			return false
		}
	}
	return true
}
