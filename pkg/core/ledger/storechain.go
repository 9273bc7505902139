package ledger

import (
	"encoding/binary"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/storage"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/io"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

const (
	headerCacheSize   = 1000
	blockCacheSize    = 100
	accountCacheSize  = 1000
	contractCacheSize = 256
)

var _ Chain = (*StoreChain)(nil)

// StoreChain is a Chain backed by a storage.Store, with small read caches
// in front of the header, block, account, and contract collections so a
// running script doesn't round-trip to disk for every repeated header,
// block, account or contract lookup. Storage-item reads are not cached and
// always go to the store.
type StoreChain struct {
	store storage.Store

	mu     sync.RWMutex
	height uint32

	headers   *lru.Cache
	blocks    *lru.Cache
	accounts  *lru.Cache
	contracts *lru.Cache
}

// NewStoreChain wraps store in a StoreChain, restoring the current height
// from the store's SysCurrentHeight entry if one is present.
func NewStoreChain(store storage.Store) (*StoreChain, error) {
	headers, _ := lru.New(headerCacheSize)
	blocks, _ := lru.New(blockCacheSize)
	accounts, _ := lru.New(accountCacheSize)
	contracts, _ := lru.New(contractCacheSize)

	c := &StoreChain{
		store:     store,
		headers:   headers,
		blocks:    blocks,
		accounts:  accounts,
		contracts: contracts,
	}

	raw, err := store.Get([]byte{byte(storage.SysCurrentHeight)})
	switch {
	case err == nil:
		c.height = binary.LittleEndian.Uint32(raw)
	case err == storage.ErrKeyNotFound:
	default:
		return nil, err
	}
	return c, nil
}

// Height implements the Chain interface.
func (c *StoreChain) Height() uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// AddBlock persists b, its header, and its transactions, and advances the
// stored height if b.Index is higher than what's recorded.
func (c *StoreChain) AddBlock(b *state.Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	hw := io.NewBufBinWriter()
	b.Header.EncodeBinary(hw.BinWriter)
	if hw.Err != nil {
		return hw.Err
	}
	if err := c.store.Put(storage.AppendPrefix(storage.HeaderPrefix, b.Hash.BytesBE()), hw.Bytes()); err != nil {
		return err
	}
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], b.Index)
	if err := c.store.Put(storage.AppendPrefix(storage.HeaderHashByIndex, idx[:]), b.Hash.BytesBE()); err != nil {
		return err
	}

	bw := io.NewBufBinWriter()
	b.EncodeBinary(bw.BinWriter)
	if bw.Err != nil {
		return bw.Err
	}
	if err := c.store.Put(storage.AppendPrefix(storage.BlockPrefix, b.Hash.BytesBE()), bw.Bytes()); err != nil {
		return err
	}

	for _, tx := range b.Transactions {
		tw := io.NewBufBinWriter()
		tx.EncodeBinary(tw.BinWriter)
		if tw.Err != nil {
			return tw.Err
		}
		if err := c.store.Put(storage.AppendPrefix(storage.TransactionPrefix, tx.Hash.BytesBE()), tw.Bytes()); err != nil {
			return err
		}
	}

	c.headers.Add(b.Hash, &b.Header)
	c.blocks.Add(b.Hash, b)

	if b.Index > c.height {
		c.height = b.Index
		var h [4]byte
		binary.LittleEndian.PutUint32(h[:], c.height)
		return c.store.Put([]byte{byte(storage.SysCurrentHeight)}, h[:])
	}
	return nil
}

func (c *StoreChain) headerHashByIndex(idx uint32) (util.Uint256, error) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], idx)
	raw, err := c.store.Get(storage.AppendPrefix(storage.HeaderHashByIndex, b[:]))
	if err != nil {
		return util.Uint256{}, err
	}
	return util.Uint256DecodeBytesBE(raw)
}

func (c *StoreChain) loadHeader(hash util.Uint256) (*state.Header, error) {
	if v, ok := c.headers.Get(hash); ok {
		return v.(*state.Header), nil
	}
	raw, err := c.store.Get(storage.AppendPrefix(storage.HeaderPrefix, hash.BytesBE()))
	if err != nil {
		return nil, err
	}
	h := new(state.Header)
	h.DecodeBinary(io.NewBinReaderFromBuf(raw))
	c.headers.Add(hash, h)
	return h, nil
}

func (c *StoreChain) resolveHeader(hashOrIndex []byte) (*state.Header, error) {
	if len(hashOrIndex) == 32 {
		hash, err := util.Uint256DecodeBytesLE(hashOrIndex)
		if err != nil {
			return nil, err
		}
		return c.loadHeader(hash)
	}
	idx := decodeLEIndex(hashOrIndex)
	hash, err := c.headerHashByIndex(idx)
	if err != nil {
		return nil, err
	}
	return c.loadHeader(hash)
}

// GetHeader implements the Chain interface.
func (c *StoreChain) GetHeader(hashOrIndex []byte) (*state.Header, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolveHeader(hashOrIndex)
}

// GetBlock implements the Chain interface.
func (c *StoreChain) GetBlock(hashOrIndex []byte) (*state.Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h, err := c.resolveHeader(hashOrIndex)
	if err != nil {
		return nil, err
	}
	if v, ok := c.blocks.Get(h.Hash); ok {
		return v.(*state.Block), nil
	}
	raw, err := c.store.Get(storage.AppendPrefix(storage.BlockPrefix, h.Hash.BytesBE()))
	if err != nil {
		return nil, err
	}
	b := new(state.Block)
	b.DecodeBinary(io.NewBinReaderFromBuf(raw))
	c.blocks.Add(h.Hash, b)
	return b, nil
}

// GetTransaction implements the Chain interface.
func (c *StoreChain) GetTransaction(hash util.Uint256) (*state.Transaction, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	raw, err := c.store.Get(storage.AppendPrefix(storage.TransactionPrefix, hash.BytesBE()))
	if err != nil {
		return nil, err
	}
	tx := new(state.Transaction)
	tx.DecodeBinary(io.NewBinReaderFromBuf(raw))
	return tx, nil
}

// GetAccount implements the Chain interface.
func (c *StoreChain) GetAccount(hash util.Uint160) (*state.Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.accounts.Get(hash); ok {
		return v.(*state.Account), nil
	}
	raw, err := c.store.Get(storage.AppendPrefix(storage.AccountPrefix, hash.BytesBE()))
	if err != nil {
		return nil, err
	}
	acc := new(state.Account)
	acc.DecodeBinary(io.NewBinReaderFromBuf(raw))
	c.accounts.Add(hash, acc)
	return acc, nil
}

// PutAccount implements the Chain interface.
func (c *StoreChain) PutAccount(acc *state.Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	bw := io.NewBufBinWriter()
	acc.EncodeBinary(bw.BinWriter)
	if bw.Err != nil {
		return bw.Err
	}
	if err := c.store.Put(storage.AppendPrefix(storage.AccountPrefix, acc.ScriptHash.BytesBE()), bw.Bytes()); err != nil {
		return err
	}
	c.accounts.Add(acc.ScriptHash, acc)
	return nil
}

// DeleteAccount implements the Chain interface.
func (c *StoreChain) DeleteAccount(hash util.Uint160) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts.Remove(hash)
	return c.store.Delete(storage.AppendPrefix(storage.AccountPrefix, hash.BytesBE()))
}

// GetAsset implements the Chain interface.
func (c *StoreChain) GetAsset(id util.Uint256) (*state.Asset, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	raw, err := c.store.Get(storage.AppendPrefix(storage.AssetPrefix, id.BytesBE()))
	if err != nil {
		return nil, err
	}
	a := new(state.Asset)
	a.DecodeBinary(io.NewBinReaderFromBuf(raw))
	return a, nil
}

// PutAsset implements the Chain interface.
func (c *StoreChain) PutAsset(asset *state.Asset) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	bw := io.NewBufBinWriter()
	asset.EncodeBinary(bw.BinWriter)
	if bw.Err != nil {
		return bw.Err
	}
	return c.store.Put(storage.AppendPrefix(storage.AssetPrefix, asset.ID.BytesBE()), bw.Bytes())
}

// GetContract implements the Chain interface.
func (c *StoreChain) GetContract(hash util.Uint160) (*state.Contract, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.contracts.Get(hash); ok {
		return v.(*state.Contract), nil
	}
	raw, err := c.store.Get(storage.AppendPrefix(storage.ContractPrefix, hash.BytesBE()))
	if err != nil {
		return nil, err
	}
	ct := new(state.Contract)
	ct.DecodeBinary(io.NewBinReaderFromBuf(raw))
	c.contracts.Add(hash, ct)
	return ct, nil
}

// PutContract implements the Chain interface.
func (c *StoreChain) PutContract(ct *state.Contract) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	bw := io.NewBufBinWriter()
	ct.EncodeBinary(bw.BinWriter)
	if bw.Err != nil {
		return bw.Err
	}
	hash := ct.ScriptHash()
	if err := c.store.Put(storage.AppendPrefix(storage.ContractPrefix, hash.BytesBE()), bw.Bytes()); err != nil {
		return err
	}
	c.contracts.Add(hash, ct)
	return nil
}

// DeleteContract implements the Chain interface.
func (c *StoreChain) DeleteContract(hash util.Uint160) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contracts.Remove(hash)
	if err := c.store.Delete(storage.AppendPrefix(storage.ContractPrefix, hash.BytesBE())); err != nil {
		return err
	}
	return c.store.Seek(storage.AppendPrefix(storage.StorageItemPrefix, hash.BytesBE()), func(k, v []byte) bool {
		_ = c.store.Delete(storage.AppendPrefix(storage.StorageItemPrefix, append(hash.BytesBE(), k...)))
		return true
	})
}

// GetValidators implements the Chain interface.
func (c *StoreChain) GetValidators() ([]*state.Validator, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*state.Validator
	err := c.store.Seek([]byte{byte(storage.ValidatorPrefix)}, func(k, v []byte) bool {
		val := new(state.Validator)
		val.DecodeBinary(io.NewBinReaderFromBuf(v))
		out = append(out, val)
		return true
	})
	return out, err
}

// PutValidator implements the Chain interface.
func (c *StoreChain) PutValidator(v *state.Validator) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	bw := io.NewBufBinWriter()
	v.EncodeBinary(bw.BinWriter)
	if bw.Err != nil {
		return bw.Err
	}
	return c.store.Put(storage.AppendPrefix(storage.ValidatorPrefix, v.PublicKey.Bytes()), bw.Bytes())
}

func storageKey(scriptHash util.Uint160, key []byte) []byte {
	return storage.AppendPrefix(storage.StorageItemPrefix, append(scriptHash.BytesBE(), key...))
}

// StorageGet implements the Chain interface.
func (c *StoreChain) StorageGet(scriptHash util.Uint160, key []byte) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, err := c.store.Get(storageKey(scriptHash, key))
	if err == storage.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// StoragePut implements the Chain interface.
func (c *StoreChain) StoragePut(scriptHash util.Uint160, key, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Put(storageKey(scriptHash, key), value)
}

// StorageDelete implements the Chain interface.
func (c *StoreChain) StorageDelete(scriptHash util.Uint160, key []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Delete(storageKey(scriptHash, key))
}

// StorageGetAll implements the Chain interface.
func (c *StoreChain) StorageGetAll(scriptHash util.Uint160) (map[string][]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string][]byte)
	prefix := storage.AppendPrefix(storage.StorageItemPrefix, scriptHash.BytesBE())
	err := c.store.Seek(prefix, func(k, v []byte) bool {
		val := make([]byte, len(v))
		copy(val, v)
		out[string(k)] = val
		return true
	})
	return out, err
}

// Close releases the underlying store.
func (c *StoreChain) Close() error {
	return c.store.Close()
}
