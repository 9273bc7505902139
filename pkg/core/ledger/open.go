package ledger

import (
	"fmt"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/storage"
)

// Open builds the Chain described by storeType/path: "bolt" opens (or
// creates) a bbolt file at path, anything else (including the empty
// string) falls back to a fresh in-memory store.
func Open(storeType, path string) (Chain, func() error, error) {
	switch storeType {
	case "bolt":
		if path == "" {
			return nil, nil, fmt.Errorf("bolt storage requires a Path")
		}
		store, err := storage.NewBoltStore(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open bolt store: %w", err)
		}
		chain, err := NewStoreChain(store)
		if err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("failed to init chain: %w", err)
		}
		return chain, store.Close, nil
	default:
		return NewMemChain(), func() error { return nil }, nil
	}
}
