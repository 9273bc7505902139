package syscall

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register("Neo.Storage.GetContext", 0, storageGetContext)
	register("Neo.Storage.Get", 0, storageGet)
	register("Neo.Storage.Put", FeeStoragePut, storagePut)
	register("Neo.Storage.Delete", 0, storageDelete)

	alias("AntShares.Storage.GetContext", "Neo.Storage.GetContext")
	alias("AntShares.Storage.Get", "Neo.Storage.Get")
	alias("AntShares.Storage.Put", "Neo.Storage.Put")
	alias("AntShares.Storage.Delete", "Neo.Storage.Delete")
}

func storageGetContext(f Frame) error {
	f.Push(stackitem.NewObject(stackitem.KindStorageContext, &state.StorageContext{ScriptHash: f.CurrentScriptHash()}))
	return nil
}

func popStorageContext(f Frame) (*state.StorageContext, error) {
	obj, err := popObject(f)
	if err != nil {
		return nil, err
	}
	sc, ok := obj.Value().(*state.StorageContext)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return sc, nil
}

func storageGet(f Frame) error {
	keyItem, err := f.Pop()
	if err != nil {
		return err
	}
	key, err := keyItem.AsBuffer()
	if err != nil {
		return err
	}
	sc, err := popStorageContext(f)
	if err != nil {
		return err
	}
	c, err := f.Chain().GetContract(sc.ScriptHash)
	if err != nil || !c.HasStorage {
		return ErrInvalidArgument
	}
	value, ok, err := f.Chain().StorageGet(sc.ScriptHash, key)
	if err != nil {
		return err
	}
	if !ok {
		f.Push(stackitem.NewBuffer(nil))
		return nil
	}
	f.Push(stackitem.NewBuffer(value))
	return nil
}

func storagePut(f Frame) error {
	valueItem, err := f.Pop()
	if err != nil {
		return err
	}
	value, err := valueItem.AsBuffer()
	if err != nil {
		return err
	}
	keyItem, err := f.Pop()
	if err != nil {
		return err
	}
	key, err := keyItem.AsBuffer()
	if err != nil {
		return err
	}
	sc, err := popStorageContext(f)
	if err != nil {
		return err
	}
	if len(key) > MaxStorageKeySize || len(value) > MaxStorageValueSize {
		return ErrInvalidArgument
	}
	return f.Chain().StoragePut(sc.ScriptHash, key, value)
}

func storageDelete(f Frame) error {
	keyItem, err := f.Pop()
	if err != nil {
		return err
	}
	key, err := keyItem.AsBuffer()
	if err != nil {
		return err
	}
	sc, err := popStorageContext(f)
	if err != nil {
		return err
	}
	return f.Chain().StorageDelete(sc.ScriptHash, key)
}

// Storage key/value size limits, mirroring the opcode-level MaxItemSize
// the engine enforces for ordinary stack items.
const (
	MaxStorageKeySize   = 1024
	MaxStorageValueSize = 1 << 16
)
