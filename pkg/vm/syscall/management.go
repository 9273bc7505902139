package syscall

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register("Neo.Account.SetVotes", 0, accountSetVotes)
	register("Neo.Validator.Register", 0, validatorRegister)
	register("Neo.Asset.Create", FeeContractCreate, assetCreate)
	register("Neo.Asset.Renew", FeeContractCreate, assetRenew)
	register("Neo.Contract.Create", FeeContractCreate, contractCreate)
	register("Neo.Contract.Migrate", FeeContractMigrate, contractMigrate)
	register("Neo.Contract.GetStorageContext", 0, contractGetStorageContext)
	register("Neo.Contract.Destroy", 0, contractDestroy)

	alias("AntShares.Account.SetVotes", "Neo.Account.SetVotes")
	alias("AntShares.Validator.Register", "Neo.Validator.Register")
	alias("AntShares.Asset.Create", "Neo.Asset.Create")
	alias("AntShares.Asset.Renew", "Neo.Asset.Renew")
	alias("AntShares.Contract.Create", "Neo.Contract.Create")
	alias("AntShares.Contract.Migrate", "Neo.Contract.Migrate")
	alias("AntShares.Contract.GetStorageContext", "Neo.Contract.GetStorageContext")
	alias("AntShares.Contract.Destroy", "Neo.Contract.Destroy")
}

// accountSetVotes requires the caller to witness the account, caps the
// vote list at MaxVotes, forbids voting with a zero governing-token
// balance, and deletes the account if it becomes deletable (spec §4.4).
func accountSetVotes(f Frame) error {
	votesItem, err := f.Pop()
	if err != nil {
		return err
	}
	rawVotes, err := votesItem.AsArray()
	if err != nil {
		return err
	}
	hash, err := popUint160(f)
	if err != nil {
		return err
	}
	if len(rawVotes) > MaxVotes {
		return ErrInvalidArgument
	}
	if !containsWitness(f.Container().WitnessHashes(), hash) {
		return ErrWitnessCheckFailed
	}
	acc, err := f.Chain().GetAccount(hash)
	if err != nil {
		acc = state.NewAccount(hash)
	}
	if acc.IsFrozen {
		return ErrInvalidArgument
	}
	votes := make([]*keys.PublicKey, 0, len(rawVotes))
	for _, v := range rawVotes {
		raw, err := v.AsBuffer()
		if err != nil {
			return err
		}
		pk, err := keys.DecodeBytes(raw)
		if err != nil {
			return err
		}
		votes = append(votes, pk)
	}
	if len(votes) > 0 && acc.Balance(governingTokenID) <= 0 {
		return ErrInvalidArgument
	}
	acc.Votes = votes
	if acc.IsDeletable() {
		return f.Chain().DeleteAccount(hash)
	}
	return f.Chain().PutAccount(acc)
}

// governingTokenID is the NEO asset's well-known identifier, the zero
// Uint256 in this classic ledger model (spec treats it as opaque; the
// genesis block is the authority in a real chain, but the VM package only
// needs a stable sentinel to test the SetVotes balance rule against).
var governingTokenID util.Uint256

func validatorRegister(f Frame) error {
	pkItem, err := f.Pop()
	if err != nil {
		return err
	}
	raw, err := pkItem.AsBuffer()
	if err != nil {
		return err
	}
	pk, err := keys.DecodeBytes(raw)
	if err != nil {
		return err
	}
	if !containsWitness(f.Container().WitnessHashes(), util.Uint160FromScript(verificationScript(pk))) {
		return ErrWitnessCheckFailed
	}
	vs, err := f.Chain().GetValidators()
	if err == nil {
		for _, v := range vs {
			if string(v.PublicKey.Bytes()) == string(pk.Bytes()) {
				return nil
			}
		}
	}
	return f.Chain().PutValidator(&state.Validator{PublicKey: pk, Registered: true})
}

// assetCreate implements the 7-argument Asset.Create syscall: only valid
// from an Invocation transaction, forbids re-registering the two native
// asset types, and witness-checks the owner key.
func assetCreate(f Frame) error {
	args := make([]stackitem.Item, 7)
	for i := range args {
		it, err := f.Pop()
		if err != nil {
			return err
		}
		args[i] = it
	}
	tx, ok := f.Container().(*state.Transaction)
	if !ok || tx.Type != state.InvocationTransaction {
		return ErrInvalidArgument
	}
	assetType, err := args[0].AsBigInteger()
	if err != nil {
		return err
	}
	if state.AssetType(assetType.Int64()) == state.GoverningToken || state.AssetType(assetType.Int64()) == state.UtilityToken {
		return ErrInvalidArgument
	}
	nameBuf, err := args[1].AsBuffer()
	if err != nil {
		return err
	}
	amount, err := args[2].AsBigInteger()
	if err != nil {
		return err
	}
	precision, err := args[3].AsBigInteger()
	if err != nil {
		return err
	}
	ownerRaw, err := args[4].AsBuffer()
	if err != nil {
		return err
	}
	owner, err := keys.DecodeBytes(ownerRaw)
	if err != nil {
		return err
	}
	if !containsWitness(f.Container().WitnessHashes(), util.Uint160FromScript(verificationScript(owner))) {
		return ErrWitnessCheckFailed
	}
	adminRaw, err := args[5].AsBuffer()
	if err != nil {
		return err
	}
	admin, err := util.Uint160DecodeBytesLE(adminRaw)
	if err != nil {
		return err
	}
	issuerRaw, err := args[6].AsBuffer()
	if err != nil {
		return err
	}
	issuer, err := util.Uint160DecodeBytesLE(issuerRaw)
	if err != nil {
		return err
	}
	asset := &state.Asset{
		ID:         tx.Hash,
		Type:       state.AssetType(assetType.Int64()),
		Name:       string(nameBuf),
		Amount:     util.Fixed8(amount.Int64()),
		Available:  0,
		Precision:  byte(precision.Int64()),
		Owner:      owner,
		Admin:      admin,
		Issuer:     issuer,
		Expiration: f.Chain().Height() + 1 + BlockHeightYear,
	}
	if err := f.Chain().PutAsset(asset); err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindAsset, asset))
	return nil
}

// assetRenew extends an asset's expiration by years BLOCK_HEIGHT_YEAR
// blocks, first bringing it forward to at least the next block height,
// clamped at the uint32 maximum.
func assetRenew(f Frame) error {
	yearsItem, err := f.Pop()
	if err != nil {
		return err
	}
	years, err := yearsItem.AsBigInteger()
	if err != nil {
		return err
	}
	asset, err := popAsset(f)
	if err != nil {
		return err
	}
	base := asset.Expiration
	if next := f.Chain().Height() + 1; base < next {
		base = next
	}
	extension := uint64(years.Int64()) * BlockHeightYear
	newExpiration := uint64(base) + extension
	if newExpiration > uint64(^uint32(0)) {
		newExpiration = uint64(^uint32(0))
	}
	asset.Expiration = uint32(newExpiration)
	if err := f.Chain().PutAsset(asset); err != nil {
		return err
	}
	f.Push(intItem(int64(asset.Expiration)))
	return nil
}

// contractCreate implements the 9-argument Contract.Create syscall,
// recording the caller as the contract's creator the first time a given
// hash is deployed (spec §4.4, createdContracts).
func contractCreate(f Frame) error {
	args := make([]stackitem.Item, 9)
	for i := range args {
		it, err := f.Pop()
		if err != nil {
			return err
		}
		args[i] = it
	}
	c, err := buildContract(args)
	if err != nil {
		return err
	}
	hash := c.ScriptHash()
	_, getErr := f.Chain().GetContract(hash)
	if err := f.Chain().PutContract(c); err != nil {
		return err
	}
	if getErr != nil {
		f.Created()[hash] = f.CurrentScriptHash()
	}
	f.Push(stackitem.NewObject(stackitem.KindContract, c))
	return nil
}

// contractMigrate behaves like Create, additionally copying every storage
// item from the calling contract to the new hash when the new contract
// was just created and has storage enabled.
func contractMigrate(f Frame) error {
	args := make([]stackitem.Item, 9)
	for i := range args {
		it, err := f.Pop()
		if err != nil {
			return err
		}
		args[i] = it
	}
	c, err := buildContract(args)
	if err != nil {
		return err
	}
	hash := c.ScriptHash()
	_, existErr := f.Chain().GetContract(hash)
	justCreated := existErr != nil
	if err := f.Chain().PutContract(c); err != nil {
		return err
	}
	if justCreated {
		f.Created()[hash] = f.CurrentScriptHash()
		if c.HasStorage {
			items, err := f.Chain().StorageGetAll(f.CurrentScriptHash())
			if err == nil {
				for k, v := range items {
					if err := f.Chain().StoragePut(hash, []byte(k), v); err != nil {
						return err
					}
				}
			}
		}
	}
	f.Push(stackitem.NewObject(stackitem.KindContract, c))
	return nil
}

func buildContract(args []stackitem.Item) (*state.Contract, error) {
	script, err := args[0].AsBuffer()
	if err != nil {
		return nil, err
	}
	paramBuf, err := args[1].AsBuffer()
	if err != nil {
		return nil, err
	}
	params := make([]smartcontract.ParamType, len(paramBuf))
	for i, b := range paramBuf {
		params[i] = smartcontract.ParamType(b)
	}
	retType, err := args[2].AsBigInteger()
	if err != nil {
		return nil, err
	}
	hasStorage, err := args[3].AsBool()
	if err != nil {
		return nil, err
	}
	name, err := args[4].AsBuffer()
	if err != nil {
		return nil, err
	}
	version, err := args[5].AsBuffer()
	if err != nil {
		return nil, err
	}
	author, err := args[6].AsBuffer()
	if err != nil {
		return nil, err
	}
	email, err := args[7].AsBuffer()
	if err != nil {
		return nil, err
	}
	description, err := args[8].AsBuffer()
	if err != nil {
		return nil, err
	}
	return &state.Contract{
		Script:      script,
		ParamList:   params,
		ReturnType:  smartcontract.ParamType(retType.Int64()),
		HasStorage:  hasStorage,
		Name:        string(name),
		Version:     string(version),
		Author:      string(author),
		Email:       string(email),
		Description: string(description),
	}, nil
}

func contractGetStorageContext(f Frame) error {
	c, err := popContract(f)
	if err != nil {
		return err
	}
	hash := c.ScriptHash()
	if creator, ok := f.Created()[hash]; !ok || !creator.Equals(f.CurrentScriptHash()) {
		return ErrInvalidArgument
	}
	f.Push(stackitem.NewObject(stackitem.KindStorageContext, &state.StorageContext{ScriptHash: hash}))
	return nil
}

func contractDestroy(f Frame) error {
	hash := f.CurrentScriptHash()
	c, err := f.Chain().GetContract(hash)
	if err != nil {
		return nil
	}
	if err := f.Chain().DeleteContract(hash); err != nil {
		return err
	}
	if c.HasStorage {
		items, err := f.Chain().StorageGetAll(hash)
		if err != nil {
			return err
		}
		for k := range items {
			if err := f.Chain().StorageDelete(hash, []byte(k)); err != nil {
				return err
			}
		}
	}
	return nil
}
