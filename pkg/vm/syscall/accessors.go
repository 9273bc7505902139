package syscall

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register("Neo.Header.GetHash", 0, wrapObj(func(h *state.Header) stackitem.Item { return stackitem.NewObject(stackitem.KindUint256, h.Hash) }))
	register("Neo.Header.GetVersion", 0, wrapObj(func(h *state.Header) stackitem.Item { return intItem(int64(h.Version)) }))
	register("Neo.Header.GetPrevHash", 0, wrapObj(func(h *state.Header) stackitem.Item { return stackitem.NewObject(stackitem.KindUint256, h.PrevHash) }))
	register("Neo.Header.GetMerkleRoot", 0, wrapObj(func(h *state.Header) stackitem.Item { return stackitem.NewObject(stackitem.KindUint256, h.MerkleRoot) }))
	register("Neo.Header.GetTimestamp", 0, wrapObj(func(h *state.Header) stackitem.Item { return intItem(int64(h.Timestamp)) }))
	register("Neo.Header.GetIndex", 0, wrapObj(func(h *state.Header) stackitem.Item { return intItem(int64(h.Index)) }))
	register("Neo.Header.GetConsensusData", 0, wrapObj(func(h *state.Header) stackitem.Item { return intItem(int64(h.ConsensusData)) }))
	register("Neo.Header.GetNextConsensus", 0, wrapObj(func(h *state.Header) stackitem.Item { return stackitem.NewObject(stackitem.KindUint160, h.NextConsensus) }))

	register("Neo.Block.GetTransactionCount", 0, blockGetTransactionCount)
	register("Neo.Block.GetTransactions", 0, blockGetTransactions)
	register("Neo.Block.GetTransaction", 0, blockGetTransaction)

	register("Neo.Transaction.GetHash", 0, wrapTx(func(t *state.Transaction) stackitem.Item { return stackitem.NewObject(stackitem.KindUint256, t.Hash) }))
	register("Neo.Transaction.GetType", 0, wrapTx(func(t *state.Transaction) stackitem.Item { return intItem(int64(t.Type)) }))
	register("Neo.Transaction.GetAttributes", 0, transactionGetAttributes)
	register("Neo.Transaction.GetInputs", 0, transactionGetInputs)
	register("Neo.Transaction.GetOutputs", 0, transactionGetOutputs)
	register("Neo.Transaction.GetReferences", FeeHash, transactionGetReferences)

	register("Neo.Attribute.GetUsage", 0, attributeGetUsage)
	register("Neo.Attribute.GetData", 0, attributeGetData)

	register("Neo.Input.GetHash", 0, inputGetHash)
	register("Neo.Input.GetIndex", 0, inputGetIndex)

	register("Neo.Output.GetAssetId", 0, outputGetAssetID)
	register("Neo.Output.GetValue", 0, outputGetValue)
	register("Neo.Output.GetScriptHash", 0, outputGetScriptHash)

	register("Neo.Account.GetScriptHash", 0, accountGetScriptHash)
	register("Neo.Account.GetVotes", 0, accountGetVotes)
	register("Neo.Account.GetBalance", 0, accountGetBalance)

	register("Neo.Asset.GetAssetId", 0, wrapAsset(func(a *state.Asset) stackitem.Item { return stackitem.NewObject(stackitem.KindUint256, a.ID) }))
	register("Neo.Asset.GetAssetType", 0, wrapAsset(func(a *state.Asset) stackitem.Item { return intItem(int64(a.Type)) }))
	register("Neo.Asset.GetAmount", 0, wrapAsset(func(a *state.Asset) stackitem.Item { return intItem(int64(a.Amount)) }))
	register("Neo.Asset.GetAvailable", 0, wrapAsset(func(a *state.Asset) stackitem.Item { return intItem(int64(a.Available)) }))
	register("Neo.Asset.GetPrecision", 0, wrapAsset(func(a *state.Asset) stackitem.Item { return intItem(int64(a.Precision)) }))
	register("Neo.Asset.GetOwner", 0, assetGetOwner)
	register("Neo.Asset.GetAdmin", 0, wrapAsset(func(a *state.Asset) stackitem.Item { return stackitem.NewObject(stackitem.KindUint160, a.Admin) }))
	register("Neo.Asset.GetIssuer", 0, wrapAsset(func(a *state.Asset) stackitem.Item { return stackitem.NewObject(stackitem.KindUint160, a.Issuer) }))

	register("Neo.Contract.GetScript", 0, contractGetScript)

	for legacy, canonical := range legacyAccessorAliases {
		alias(legacy, canonical)
	}
}

var legacyAccessorAliases = map[string]string{
	"AntShares.Header.GetHash":              "Neo.Header.GetHash",
	"AntShares.Header.GetVersion":           "Neo.Header.GetVersion",
	"AntShares.Header.GetPrevHash":          "Neo.Header.GetPrevHash",
	"AntShares.Header.GetMerkleRoot":        "Neo.Header.GetMerkleRoot",
	"AntShares.Header.GetTimestamp":         "Neo.Header.GetTimestamp",
	"AntShares.Header.GetConsensusData":     "Neo.Header.GetConsensusData",
	"AntShares.Header.GetNextConsensus":     "Neo.Header.GetNextConsensus",
	"AntShares.Block.GetTransactionCount":   "Neo.Block.GetTransactionCount",
	"AntShares.Block.GetTransactions":       "Neo.Block.GetTransactions",
	"AntShares.Block.GetTransaction":        "Neo.Block.GetTransaction",
	"AntShares.Transaction.GetHash":         "Neo.Transaction.GetHash",
	"AntShares.Transaction.GetType":         "Neo.Transaction.GetType",
	"AntShares.Transaction.GetAttributes":   "Neo.Transaction.GetAttributes",
	"AntShares.Transaction.GetInputs":       "Neo.Transaction.GetInputs",
	"AntShares.Transaction.GetOutputs":      "Neo.Transaction.GetOutputs",
	"AntShares.Transaction.GetReferences":   "Neo.Transaction.GetReferences",
	"AntShares.Attribute.GetUsage":          "Neo.Attribute.GetUsage",
	"AntShares.Attribute.GetData":           "Neo.Attribute.GetData",
	"AntShares.Input.GetHash":               "Neo.Input.GetHash",
	"AntShares.Input.GetIndex":              "Neo.Input.GetIndex",
	"AntShares.Output.GetAssetId":           "Neo.Output.GetAssetId",
	"AntShares.Output.GetValue":             "Neo.Output.GetValue",
	"AntShares.Output.GetScriptHash":        "Neo.Output.GetScriptHash",
	"AntShares.Account.GetScriptHash":       "Neo.Account.GetScriptHash",
	"AntShares.Account.GetVotes":            "Neo.Account.GetVotes",
	"AntShares.Account.GetBalance":          "Neo.Account.GetBalance",
	"AntShares.Asset.GetAssetId":            "Neo.Asset.GetAssetId",
	"AntShares.Asset.GetAssetType":          "Neo.Asset.GetAssetType",
	"AntShares.Asset.GetAmount":             "Neo.Asset.GetAmount",
	"AntShares.Asset.GetAvailable":          "Neo.Asset.GetAvailable",
	"AntShares.Asset.GetPrecision":          "Neo.Asset.GetPrecision",
	"AntShares.Asset.GetOwner":              "Neo.Asset.GetOwner",
	"AntShares.Asset.GetAdmin":              "Neo.Asset.GetAdmin",
	"AntShares.Asset.GetIssuer":             "Neo.Asset.GetIssuer",
	"AntShares.Contract.GetScript":          "Neo.Contract.GetScript",
}

func intItem(v int64) stackitem.Item { return stackitem.NewInteger(big.NewInt(v)) }

// wrapObj builds a Handler that pops a Header object and applies fn.
func wrapObj(fn func(*state.Header) stackitem.Item) Handler {
	return func(f Frame) error {
		h, err := popHeaderLike(f)
		if err != nil {
			return err
		}
		f.Push(fn(h))
		return nil
	}
}

func wrapTx(fn func(*state.Transaction) stackitem.Item) Handler {
	return func(f Frame) error {
		tx, err := popTransaction(f)
		if err != nil {
			return err
		}
		f.Push(fn(tx))
		return nil
	}
}

func wrapAsset(fn func(*state.Asset) stackitem.Item) Handler {
	return func(f Frame) error {
		a, err := popAsset(f)
		if err != nil {
			return err
		}
		f.Push(fn(a))
		return nil
	}
}

func popObject(f Frame) (*stackitem.Object, error) {
	it, err := f.Pop()
	if err != nil {
		return nil, err
	}
	obj, ok := it.(*stackitem.Object)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return obj, nil
}

// popHeaderLike accepts either a Header or a Block object, since a Block
// embeds a Header and the accessor group is shared between them.
func popHeaderLike(f Frame) (*state.Header, error) {
	obj, err := popObject(f)
	if err != nil {
		return nil, err
	}
	switch v := obj.Value().(type) {
	case *state.Header:
		return v, nil
	case *state.Block:
		return &v.Header, nil
	default:
		return nil, ErrInvalidArgument
	}
}

func popBlock(f Frame) (*state.Block, error) {
	obj, err := popObject(f)
	if err != nil {
		return nil, err
	}
	b, ok := obj.Value().(*state.Block)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return b, nil
}

func popTransaction(f Frame) (*state.Transaction, error) {
	obj, err := popObject(f)
	if err != nil {
		return nil, err
	}
	t, ok := obj.Value().(*state.Transaction)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return t, nil
}

func popAccount(f Frame) (*state.Account, error) {
	obj, err := popObject(f)
	if err != nil {
		return nil, err
	}
	a, ok := obj.Value().(*state.Account)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return a, nil
}

func popAsset(f Frame) (*state.Asset, error) {
	obj, err := popObject(f)
	if err != nil {
		return nil, err
	}
	a, ok := obj.Value().(*state.Asset)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return a, nil
}

func popContract(f Frame) (*state.Contract, error) {
	obj, err := popObject(f)
	if err != nil {
		return nil, err
	}
	c, ok := obj.Value().(*state.Contract)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return c, nil
}

func blockGetTransactionCount(f Frame) error {
	b, err := popBlock(f)
	if err != nil {
		return err
	}
	f.Push(intItem(int64(len(b.Transactions))))
	return nil
}

func blockGetTransactions(f Frame) error {
	b, err := popBlock(f)
	if err != nil {
		return err
	}
	items := make([]stackitem.Item, len(b.Transactions))
	for i, t := range b.Transactions {
		items[i] = stackitem.NewObject(stackitem.KindTransaction, t)
	}
	f.Push(stackitem.NewArray(items))
	return nil
}

func blockGetTransaction(f Frame) error {
	idxItem, err := f.Pop()
	if err != nil {
		return err
	}
	idx, err := idxItem.AsBigInteger()
	if err != nil {
		return err
	}
	b, err := popBlock(f)
	if err != nil {
		return err
	}
	i := int(idx.Int64())
	if i < 0 || i >= len(b.Transactions) {
		return ErrNotFound
	}
	f.Push(stackitem.NewObject(stackitem.KindTransaction, b.Transactions[i]))
	return nil
}

func transactionGetAttributes(f Frame) error {
	t, err := popTransaction(f)
	if err != nil {
		return err
	}
	items := make([]stackitem.Item, len(t.Attributes))
	for i := range t.Attributes {
		items[i] = stackitem.NewObject(stackitem.KindAttribute, &t.Attributes[i])
	}
	f.Push(stackitem.NewArray(items))
	return nil
}

func transactionGetInputs(f Frame) error {
	t, err := popTransaction(f)
	if err != nil {
		return err
	}
	items := make([]stackitem.Item, len(t.Inputs))
	for i := range t.Inputs {
		items[i] = stackitem.NewObject(stackitem.KindInput, &t.Inputs[i])
	}
	f.Push(stackitem.NewArray(items))
	return nil
}

func transactionGetOutputs(f Frame) error {
	t, err := popTransaction(f)
	if err != nil {
		return err
	}
	items := make([]stackitem.Item, len(t.Outputs))
	for i := range t.Outputs {
		items[i] = stackitem.NewObject(stackitem.KindOutput, &t.Outputs[i])
	}
	f.Push(stackitem.NewArray(items))
	return nil
}

func transactionGetReferences(f Frame) error {
	t, err := popTransaction(f)
	if err != nil {
		return err
	}
	chain := f.Chain()
	refs := t.References(func(in state.Input) (state.Output, bool) {
		prev, err := chain.GetTransaction(in.PrevHash)
		if err != nil || int(in.PrevIndex) >= len(prev.Outputs) {
			return state.Output{}, false
		}
		return prev.Outputs[in.PrevIndex], true
	})
	items := make([]stackitem.Item, len(refs))
	for i := range refs {
		items[i] = stackitem.NewObject(stackitem.KindOutput, &refs[i])
	}
	f.Push(stackitem.NewArray(items))
	return nil
}

func popAttribute(f Frame) (*state.Attribute, error) {
	obj, err := popObject(f)
	if err != nil {
		return nil, err
	}
	a, ok := obj.Value().(*state.Attribute)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return a, nil
}

func attributeGetUsage(f Frame) error {
	a, err := popAttribute(f)
	if err != nil {
		return err
	}
	f.Push(intItem(int64(a.Usage)))
	return nil
}

func attributeGetData(f Frame) error {
	a, err := popAttribute(f)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewBuffer(a.Data))
	return nil
}

func popInput(f Frame) (*state.Input, error) {
	obj, err := popObject(f)
	if err != nil {
		return nil, err
	}
	in, ok := obj.Value().(*state.Input)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return in, nil
}

func inputGetHash(f Frame) error {
	in, err := popInput(f)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindUint256, in.PrevHash))
	return nil
}

func inputGetIndex(f Frame) error {
	in, err := popInput(f)
	if err != nil {
		return err
	}
	f.Push(intItem(int64(in.PrevIndex)))
	return nil
}

func popOutput(f Frame) (*state.Output, error) {
	obj, err := popObject(f)
	if err != nil {
		return nil, err
	}
	out, ok := obj.Value().(*state.Output)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return out, nil
}

func outputGetAssetID(f Frame) error {
	out, err := popOutput(f)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindUint256, out.AssetID))
	return nil
}

func outputGetValue(f Frame) error {
	out, err := popOutput(f)
	if err != nil {
		return err
	}
	f.Push(intItem(int64(out.Value)))
	return nil
}

func outputGetScriptHash(f Frame) error {
	out, err := popOutput(f)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindUint160, out.ScriptHash))
	return nil
}

func accountGetScriptHash(f Frame) error {
	a, err := popAccount(f)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindUint160, a.ScriptHash))
	return nil
}

func accountGetVotes(f Frame) error {
	a, err := popAccount(f)
	if err != nil {
		return err
	}
	items := make([]stackitem.Item, len(a.Votes))
	for i, v := range a.Votes {
		items[i] = stackitem.NewObject(stackitem.KindECPoint, v)
	}
	f.Push(stackitem.NewArray(items))
	return nil
}

func accountGetBalance(f Frame) error {
	assetID, err := popUint256(f)
	if err != nil {
		return err
	}
	a, err := popAccount(f)
	if err != nil {
		return err
	}
	f.Push(intItem(int64(a.Balance(assetID))))
	return nil
}

func assetGetOwner(f Frame) error {
	a, err := popAsset(f)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewObject(stackitem.KindECPoint, a.Owner))
	return nil
}

func contractGetScript(f Frame) error {
	c, err := popContract(f)
	if err != nil {
		return err
	}
	f.Push(stackitem.NewBuffer(c.Script))
	return nil
}
