// Package ledger defines the Chain facade the VM consumes for all ledger
// reads and writes (spec §4.7, C7) and provides reference implementations
// of it.
package ledger

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// Chain is the read/write ledger facade. The VM and its syscall catalogue
// call only through this interface; nothing in pkg/vm ever touches a
// storage backend directly.
type Chain interface {
	Height() uint32
	AddBlock(b *state.Block) error
	GetHeader(hashOrIndex []byte) (*state.Header, error)
	GetBlock(hashOrIndex []byte) (*state.Block, error)
	GetTransaction(hash util.Uint256) (*state.Transaction, error)

	GetAccount(hash util.Uint160) (*state.Account, error)
	PutAccount(acc *state.Account) error
	DeleteAccount(hash util.Uint160) error

	GetAsset(id util.Uint256) (*state.Asset, error)
	PutAsset(asset *state.Asset) error

	GetContract(hash util.Uint160) (*state.Contract, error)
	PutContract(c *state.Contract) error
	DeleteContract(hash util.Uint160) error

	GetValidators() ([]*state.Validator, error)
	PutValidator(v *state.Validator) error

	StorageGet(scriptHash util.Uint160, key []byte) ([]byte, bool, error)
	StoragePut(scriptHash util.Uint160, key, value []byte) error
	StorageDelete(scriptHash util.Uint160, key []byte) error
	StorageGetAll(scriptHash util.Uint160) (map[string][]byte, error)
}
