// Package storage provides the key-value backends the ledger facade
// persists block, transaction, account, asset, contract, and storage-item
// data in: an in-memory map for tests and a bbolt-backed store for
// anything that needs to survive a restart.
package storage

import "errors"

// ErrKeyNotFound is returned by Get when key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KeyPrefix tags the entity family a key belongs to, so a single flat
// keyspace can hold every collection the ledger facade exposes.
type KeyPrefix byte

// The collections stored under the ledger facade.
const (
	HeaderPrefix      KeyPrefix = 0x01
	BlockPrefix       KeyPrefix = 0x02
	TransactionPrefix KeyPrefix = 0x03
	AccountPrefix     KeyPrefix = 0x04
	AssetPrefix       KeyPrefix = 0x05
	ContractPrefix    KeyPrefix = 0x06
	ValidatorPrefix   KeyPrefix = 0x07
	StorageItemPrefix KeyPrefix = 0x08
	SysCurrentHeight  KeyPrefix = 0x09
	HeaderHashByIndex KeyPrefix = 0x0A
)

// AppendPrefix returns key prefixed with p, the layout every Store
// implementation's keys share.
func AppendPrefix(p KeyPrefix, key []byte) []byte {
	b := make([]byte, len(key)+1)
	b[0] = byte(p)
	copy(b[1:], key)
	return b
}

// Store is the key-value contract the ledger facade persists through.
// Implementations need not be safe for concurrent writers; the ledger
// facade serializes writes itself.
type Store interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	// Seek calls f for every key with the given prefix, in key order,
	// with the prefix stripped from the key passed to f. Seek stops
	// early if f returns false.
	Seek(prefix []byte, f func(k, v []byte) bool) error
	Close() error
}
