package ledger

import (
	"fmt"
	"sync"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

var _ Chain = (*MemChain)(nil)

// MemChain is an in-memory Chain, built entirely out of maps guarded by a
// single mutex. It exists for unit tests and the debugger CLI's scratch
// sessions; nothing it holds survives the process.
type MemChain struct {
	mu sync.RWMutex

	headers      map[util.Uint256]*state.Header
	headersByIdx map[uint32]*state.Header
	blocks       map[util.Uint256]*state.Block
	txs          map[util.Uint256]*state.Transaction

	accounts   map[util.Uint160]*state.Account
	assets     map[util.Uint256]*state.Asset
	contracts  map[util.Uint160]*state.Contract
	validators map[string]*state.Validator

	storage map[util.Uint160]map[string][]byte

	height uint32
}

// NewMemChain returns an empty MemChain at height 0.
func NewMemChain() *MemChain {
	return &MemChain{
		headers:      make(map[util.Uint256]*state.Header),
		headersByIdx: make(map[uint32]*state.Header),
		blocks:       make(map[util.Uint256]*state.Block),
		txs:          make(map[util.Uint256]*state.Transaction),
		accounts:     make(map[util.Uint160]*state.Account),
		assets:       make(map[util.Uint256]*state.Asset),
		contracts:    make(map[util.Uint160]*state.Contract),
		validators:   make(map[string]*state.Validator),
		storage:      make(map[util.Uint160]map[string][]byte),
	}
}

// Height implements the Chain interface.
func (c *MemChain) Height() uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// AddBlock indexes b (and its header and transactions) and advances the
// chain's height to b's index if it is higher. Test fixtures, the
// debugger CLI, and the restore command use this to seed a chain without
// a network sync loop.
func (c *MemChain) AddBlock(b *state.Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers[b.Hash] = &b.Header
	c.headersByIdx[b.Index] = &b.Header
	c.blocks[b.Hash] = b
	for _, tx := range b.Transactions {
		c.txs[tx.Hash] = tx
	}
	if b.Index > c.height || (b.Index == 0 && c.height == 0 && len(c.blocks) == 1) {
		c.height = b.Index
	}
	return nil
}

func (c *MemChain) resolveHeader(hashOrIndex []byte) (*state.Header, error) {
	if len(hashOrIndex) == 32 {
		hash, err := util.Uint256DecodeBytesLE(hashOrIndex)
		if err != nil {
			return nil, err
		}
		h, ok := c.headers[hash]
		if !ok {
			return nil, fmt.Errorf("header %s not found", hash.StringBE())
		}
		return h, nil
	}
	idx := decodeLEIndex(hashOrIndex)
	h, ok := c.headersByIdx[idx]
	if !ok {
		return nil, fmt.Errorf("header at index %d not found", idx)
	}
	return h, nil
}

// GetHeader implements the Chain interface.
func (c *MemChain) GetHeader(hashOrIndex []byte) (*state.Header, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolveHeader(hashOrIndex)
}

// GetBlock implements the Chain interface.
func (c *MemChain) GetBlock(hashOrIndex []byte) (*state.Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, err := c.resolveHeader(hashOrIndex)
	if err != nil {
		return nil, err
	}
	b, ok := c.blocks[h.Hash]
	if !ok {
		return nil, fmt.Errorf("block %s not found", h.Hash.StringBE())
	}
	return b, nil
}

// GetTransaction implements the Chain interface.
func (c *MemChain) GetTransaction(hash util.Uint256) (*state.Transaction, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tx, ok := c.txs[hash]
	if !ok {
		return nil, fmt.Errorf("transaction %s not found", hash.StringBE())
	}
	return tx, nil
}

// GetAccount implements the Chain interface.
func (c *MemChain) GetAccount(hash util.Uint160) (*state.Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	acc, ok := c.accounts[hash]
	if !ok {
		return nil, fmt.Errorf("account %s not found", hash.StringBE())
	}
	return acc, nil
}

// PutAccount implements the Chain interface.
func (c *MemChain) PutAccount(acc *state.Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts[acc.ScriptHash] = acc
	return nil
}

// DeleteAccount implements the Chain interface.
func (c *MemChain) DeleteAccount(hash util.Uint160) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.accounts, hash)
	return nil
}

// GetAsset implements the Chain interface.
func (c *MemChain) GetAsset(id util.Uint256) (*state.Asset, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.assets[id]
	if !ok {
		return nil, fmt.Errorf("asset %s not found", id.StringBE())
	}
	return a, nil
}

// PutAsset implements the Chain interface.
func (c *MemChain) PutAsset(asset *state.Asset) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assets[asset.ID] = asset
	return nil
}

// GetContract implements the Chain interface.
func (c *MemChain) GetContract(hash util.Uint160) (*state.Contract, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ct, ok := c.contracts[hash]
	if !ok {
		return nil, fmt.Errorf("contract %s not found", hash.StringBE())
	}
	return ct, nil
}

// PutContract implements the Chain interface.
func (c *MemChain) PutContract(ct *state.Contract) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contracts[ct.ScriptHash()] = ct
	return nil
}

// DeleteContract implements the Chain interface.
func (c *MemChain) DeleteContract(hash util.Uint160) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.contracts, hash)
	delete(c.storage, hash)
	return nil
}

// GetValidators implements the Chain interface.
func (c *MemChain) GetValidators() ([]*state.Validator, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*state.Validator, 0, len(c.validators))
	for _, v := range c.validators {
		out = append(out, v)
	}
	return out, nil
}

// PutValidator implements the Chain interface.
func (c *MemChain) PutValidator(v *state.Validator) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.validators[string(v.PublicKey.Bytes())] = v
	return nil
}

// StorageGet implements the Chain interface.
func (c *MemChain) StorageGet(scriptHash util.Uint160, key []byte) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bucket, ok := c.storage[scriptHash]
	if !ok {
		return nil, false, nil
	}
	v, ok := bucket[string(key)]
	return v, ok, nil
}

// StoragePut implements the Chain interface.
func (c *MemChain) StoragePut(scriptHash util.Uint160, key, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	bucket, ok := c.storage[scriptHash]
	if !ok {
		bucket = make(map[string][]byte)
		c.storage[scriptHash] = bucket
	}
	v := make([]byte, len(value))
	copy(v, value)
	bucket[string(key)] = v
	return nil
}

// StorageDelete implements the Chain interface.
func (c *MemChain) StorageDelete(scriptHash util.Uint160, key []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if bucket, ok := c.storage[scriptHash]; ok {
		delete(bucket, string(key))
	}
	return nil
}

// StorageGetAll implements the Chain interface.
func (c *MemChain) StorageGetAll(scriptHash util.Uint160) (map[string][]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bucket := c.storage[scriptHash]
	out := make(map[string][]byte, len(bucket))
	for k, v := range bucket {
		out[k] = v
	}
	return out, nil
}

func decodeLEIndex(b []byte) uint32 {
	var idx uint32
	for i := len(b) - 1; i >= 0; i-- {
		idx = idx<<8 | uint32(b[i])
	}
	return idx
}
