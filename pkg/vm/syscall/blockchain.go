package syscall

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register("Neo.Blockchain.GetHeight", 0, blockchainGetHeight)
	register("Neo.Blockchain.GetHeader", FeeHash, blockchainGetHeader)
	register("Neo.Blockchain.GetBlock", FeeHash, blockchainGetBlock)
	register("Neo.Blockchain.GetTransaction", FeeHash, blockchainGetTransaction)
	register("Neo.Blockchain.GetAccount", 0, blockchainGetAccount)
	register("Neo.Blockchain.GetAsset", 0, blockchainGetAsset)
	register("Neo.Blockchain.GetContract", 0, blockchainGetContract)
	register("Neo.Blockchain.GetValidators", 0, blockchainGetValidators)

	alias("AntShares.Blockchain.GetHeight", "Neo.Blockchain.GetHeight")
	alias("AntShares.Blockchain.GetHeader", "Neo.Blockchain.GetHeader")
	alias("AntShares.Blockchain.GetBlock", "Neo.Blockchain.GetBlock")
	alias("AntShares.Blockchain.GetTransaction", "Neo.Blockchain.GetTransaction")
	alias("AntShares.Blockchain.GetAccount", "Neo.Blockchain.GetAccount")
	alias("AntShares.Blockchain.GetAsset", "Neo.Blockchain.GetAsset")
	alias("AntShares.Blockchain.GetContract", "Neo.Blockchain.GetContract")
	alias("AntShares.Blockchain.GetValidators", "Neo.Blockchain.GetValidators")
}

func blockchainGetHeight(f Frame) error {
	f.Push(stackitem.NewInteger(big.NewInt(int64(f.Chain().Height()))))
	return nil
}

func blockchainGetHeader(f Frame) error {
	raw, err := popHashOrIndex(f)
	if err != nil {
		return err
	}
	h, err := f.Chain().GetHeader(raw)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindHeader, h))
	return nil
}

func blockchainGetBlock(f Frame) error {
	raw, err := popHashOrIndex(f)
	if err != nil {
		return err
	}
	b, err := f.Chain().GetBlock(raw)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindBlock, b))
	return nil
}

func blockchainGetTransaction(f Frame) error {
	hash, err := popUint256(f)
	if err != nil {
		return err
	}
	tx, err := f.Chain().GetTransaction(hash)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindTransaction, tx))
	return nil
}

func blockchainGetAccount(f Frame) error {
	hash, err := popUint160(f)
	if err != nil {
		return err
	}
	acc, err := f.Chain().GetAccount(hash)
	if err != nil {
		acc = state.NewAccount(hash)
	}
	f.Push(stackitem.NewObject(stackitem.KindAccount, acc))
	return nil
}

func blockchainGetAsset(f Frame) error {
	id, err := popUint256(f)
	if err != nil {
		return err
	}
	asset, err := f.Chain().GetAsset(id)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindAsset, asset))
	return nil
}

func blockchainGetContract(f Frame) error {
	hash, err := popUint160(f)
	if err != nil {
		return err
	}
	c, err := f.Chain().GetContract(hash)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindContract, c))
	return nil
}

func blockchainGetValidators(f Frame) error {
	vs, err := f.Chain().GetValidators()
	if err != nil {
		return err
	}
	items := make([]stackitem.Item, len(vs))
	for i, v := range vs {
		items[i] = stackitem.NewObject(stackitem.KindECPoint, v.PublicKey)
	}
	f.Push(stackitem.NewArray(items))
	return nil
}

// popHashOrIndex decodes the union spec §4.4 documents for GetHeader/
// GetBlock: a 32-byte buffer (interpreted as a reversed UInt256) or a
// buffer of up to 5 bytes (a little-endian block index). It is returned
// unparsed; the ledger facade's GetHeader/GetBlock performs the actual
// dispatch so the callers, not this package, own the storage layout.
func popHashOrIndex(f Frame) ([]byte, error) {
	it, err := f.Pop()
	if err != nil {
		return nil, err
	}
	raw, err := it.AsBuffer()
	if err != nil {
		return nil, err
	}
	if len(raw) != 32 && len(raw) > 5 {
		return nil, ErrInvalidArgument
	}
	return raw, nil
}

func popUint160(f Frame) (util.Uint160, error) {
	it, err := f.Pop()
	if err != nil {
		return util.Uint160{}, err
	}
	raw, err := it.AsBuffer()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesLE(raw)
}

func popUint256(f Frame) (util.Uint256, error) {
	it, err := f.Pop()
	if err != nil {
		return util.Uint256{}, err
	}
	raw, err := it.AsBuffer()
	if err != nil {
		return util.Uint256{}, err
	}
	return util.Uint256DecodeBytesLE(raw)
}
