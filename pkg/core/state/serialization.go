package state

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/io"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// EncodeBinary implements the io.Serializable interface.
func (w *Witness) EncodeBinary(bw *io.BinWriter) {
	bw.WriteVarBytes(w.InvocationScript)
	bw.WriteVarBytes(w.VerificationScript)
}

// DecodeBinary implements the io.Serializable interface.
func (w *Witness) DecodeBinary(br *io.BinReader) {
	w.InvocationScript = br.ReadVarBytes()
	w.VerificationScript = br.ReadVarBytes()
}

// EncodeBinary implements the io.Serializable interface.
func (a *Attribute) EncodeBinary(bw *io.BinWriter) {
	bw.WriteB(byte(a.Usage))
	bw.WriteVarBytes(a.Data)
}

// DecodeBinary implements the io.Serializable interface.
func (a *Attribute) DecodeBinary(br *io.BinReader) {
	a.Usage = AttributeUsage(br.ReadB())
	a.Data = br.ReadVarBytes()
}

// EncodeBinary implements the io.Serializable interface.
func (in *Input) EncodeBinary(bw *io.BinWriter) {
	bw.WriteBytes(in.PrevHash.BytesBE())
	bw.WriteU16LE(in.PrevIndex)
}

// DecodeBinary implements the io.Serializable interface.
func (in *Input) DecodeBinary(br *io.BinReader) {
	var b [32]byte
	br.ReadBytes(b[:])
	if br.Err == nil {
		in.PrevHash, br.Err = util.Uint256DecodeBytesBE(b[:])
	}
	in.PrevIndex = br.ReadU16LE()
}

// EncodeBinary implements the io.Serializable interface.
func (o *Output) EncodeBinary(bw *io.BinWriter) {
	bw.WriteBytes(o.AssetID.BytesBE())
	bw.WriteU64LE(uint64(o.Value))
	bw.WriteBytes(o.ScriptHash.BytesBE())
}

// DecodeBinary implements the io.Serializable interface.
func (o *Output) DecodeBinary(br *io.BinReader) {
	var a [32]byte
	br.ReadBytes(a[:])
	if br.Err == nil {
		o.AssetID, br.Err = util.Uint256DecodeBytesBE(a[:])
	}
	o.Value = util.Fixed8(br.ReadU64LE())
	var h [20]byte
	br.ReadBytes(h[:])
	if br.Err == nil {
		o.ScriptHash, br.Err = util.Uint160DecodeBytesBE(h[:])
	}
}

// EncodeBinary implements the io.Serializable interface.
func (h *Header) EncodeBinary(bw *io.BinWriter) {
	bw.WriteBytes(h.Hash.BytesBE())
	bw.WriteU32LE(h.Version)
	bw.WriteBytes(h.PrevHash.BytesBE())
	bw.WriteBytes(h.MerkleRoot.BytesBE())
	bw.WriteU32LE(h.Timestamp)
	bw.WriteU32LE(h.Index)
	bw.WriteU64LE(h.ConsensusData)
	bw.WriteBytes(h.NextConsensus.BytesBE())
	h.Witness.EncodeBinary(bw)
}

// DecodeBinary implements the io.Serializable interface.
func (h *Header) DecodeBinary(br *io.BinReader) {
	var hash, prev, root [32]byte
	br.ReadBytes(hash[:])
	h.Version = br.ReadU32LE()
	br.ReadBytes(prev[:])
	br.ReadBytes(root[:])
	h.Timestamp = br.ReadU32LE()
	h.Index = br.ReadU32LE()
	h.ConsensusData = br.ReadU64LE()
	var next [20]byte
	br.ReadBytes(next[:])
	if br.Err == nil {
		h.Hash, br.Err = util.Uint256DecodeBytesBE(hash[:])
	}
	if br.Err == nil {
		h.PrevHash, br.Err = util.Uint256DecodeBytesBE(prev[:])
	}
	if br.Err == nil {
		h.MerkleRoot, br.Err = util.Uint256DecodeBytesBE(root[:])
	}
	if br.Err == nil {
		h.NextConsensus, br.Err = util.Uint160DecodeBytesBE(next[:])
	}
	h.Witness.DecodeBinary(br)
}

// EncodeBinary implements the io.Serializable interface.
func (t *Transaction) EncodeBinary(bw *io.BinWriter) {
	bw.WriteBytes(t.Hash.BytesBE())
	bw.WriteB(byte(t.Type))
	bw.WriteVarUint(uint64(len(t.Attributes)))
	for i := range t.Attributes {
		t.Attributes[i].EncodeBinary(bw)
	}
	bw.WriteVarUint(uint64(len(t.Inputs)))
	for i := range t.Inputs {
		t.Inputs[i].EncodeBinary(bw)
	}
	bw.WriteVarUint(uint64(len(t.Outputs)))
	for i := range t.Outputs {
		t.Outputs[i].EncodeBinary(bw)
	}
	bw.WriteVarUint(uint64(len(t.Witnesses)))
	for i := range t.Witnesses {
		t.Witnesses[i].EncodeBinary(bw)
	}
	bw.WriteVarBytes(t.RawMessage)
}

// DecodeBinary implements the io.Serializable interface.
func (t *Transaction) DecodeBinary(br *io.BinReader) {
	var hash [32]byte
	br.ReadBytes(hash[:])
	if br.Err == nil {
		t.Hash, br.Err = util.Uint256DecodeBytesBE(hash[:])
	}
	t.Type = TransactionType(br.ReadB())

	t.Attributes = make([]Attribute, br.ReadVarUint())
	for i := range t.Attributes {
		t.Attributes[i].DecodeBinary(br)
	}
	t.Inputs = make([]Input, br.ReadVarUint())
	for i := range t.Inputs {
		t.Inputs[i].DecodeBinary(br)
	}
	t.Outputs = make([]Output, br.ReadVarUint())
	for i := range t.Outputs {
		t.Outputs[i].DecodeBinary(br)
	}
	t.Witnesses = make([]Witness, br.ReadVarUint())
	for i := range t.Witnesses {
		t.Witnesses[i].DecodeBinary(br)
	}
	t.RawMessage = br.ReadVarBytes()
}

// EncodeBinary implements the io.Serializable interface.
func (b *Block) EncodeBinary(bw *io.BinWriter) {
	b.Header.EncodeBinary(bw)
	bw.WriteVarUint(uint64(len(b.Transactions)))
	for _, tx := range b.Transactions {
		tx.EncodeBinary(bw)
	}
}

// DecodeBinary implements the io.Serializable interface.
func (b *Block) DecodeBinary(br *io.BinReader) {
	b.Header.DecodeBinary(br)
	b.Transactions = make([]*Transaction, br.ReadVarUint())
	for i := range b.Transactions {
		tx := new(Transaction)
		tx.DecodeBinary(br)
		b.Transactions[i] = tx
	}
}

// EncodeBinary implements the io.Serializable interface.
func (a *Account) EncodeBinary(bw *io.BinWriter) {
	bw.WriteBytes(a.ScriptHash.BytesBE())
	bw.WriteBool(a.IsFrozen)
	bw.WriteVarUint(uint64(len(a.Votes)))
	for _, v := range a.Votes {
		bw.WriteVarBytes(v.Bytes())
	}
	bw.WriteVarUint(uint64(len(a.Balances)))
	for asset, val := range a.Balances {
		bw.WriteBytes(asset.BytesBE())
		bw.WriteU64LE(uint64(val))
	}
}

// DecodeBinary implements the io.Serializable interface.
func (a *Account) DecodeBinary(br *io.BinReader) {
	var hash [20]byte
	br.ReadBytes(hash[:])
	if br.Err == nil {
		a.ScriptHash, br.Err = util.Uint160DecodeBytesBE(hash[:])
	}
	a.IsFrozen = br.ReadBool()

	n := br.ReadVarUint()
	a.Votes = make([]*keys.PublicKey, 0, n)
	for i := uint64(0); i < n; i++ {
		raw := br.ReadVarBytes()
		if br.Err != nil {
			break
		}
		pk, err := keys.DecodeBytes(raw)
		if err != nil {
			br.Err = err
			break
		}
		a.Votes = append(a.Votes, pk)
	}

	nb := br.ReadVarUint()
	a.Balances = make(map[util.Uint256]util.Fixed8, nb)
	for i := uint64(0); i < nb; i++ {
		var assetHash [32]byte
		br.ReadBytes(assetHash[:])
		val := br.ReadU64LE()
		if br.Err != nil {
			break
		}
		id, err := util.Uint256DecodeBytesBE(assetHash[:])
		if err != nil {
			br.Err = err
			break
		}
		a.Balances[id] = util.Fixed8(val)
	}
}

// EncodeBinary implements the io.Serializable interface.
func (a *Asset) EncodeBinary(bw *io.BinWriter) {
	bw.WriteBytes(a.ID.BytesBE())
	bw.WriteB(byte(a.Type))
	bw.WriteString(a.Name)
	bw.WriteU64LE(uint64(a.Amount))
	bw.WriteU64LE(uint64(a.Available))
	bw.WriteB(a.Precision)
	bw.WriteVarBytes(a.Owner.Bytes())
	bw.WriteBytes(a.Admin.BytesBE())
	bw.WriteBytes(a.Issuer.BytesBE())
	bw.WriteU32LE(a.Expiration)
}

// DecodeBinary implements the io.Serializable interface.
func (a *Asset) DecodeBinary(br *io.BinReader) {
	var id [32]byte
	br.ReadBytes(id[:])
	if br.Err == nil {
		a.ID, br.Err = util.Uint256DecodeBytesBE(id[:])
	}
	a.Type = AssetType(br.ReadB())
	a.Name = br.ReadString()
	a.Amount = util.Fixed8(br.ReadU64LE())
	a.Available = util.Fixed8(br.ReadU64LE())
	a.Precision = br.ReadB()
	owner := br.ReadVarBytes()
	if br.Err == nil {
		a.Owner, br.Err = keys.DecodeBytes(owner)
	}
	var admin, issuer [20]byte
	br.ReadBytes(admin[:])
	br.ReadBytes(issuer[:])
	if br.Err == nil {
		a.Admin, br.Err = util.Uint160DecodeBytesBE(admin[:])
	}
	if br.Err == nil {
		a.Issuer, br.Err = util.Uint160DecodeBytesBE(issuer[:])
	}
	a.Expiration = br.ReadU32LE()
}

// EncodeBinary implements the io.Serializable interface.
func (c *Contract) EncodeBinary(bw *io.BinWriter) {
	bw.WriteVarBytes(c.Script)
	bw.WriteVarUint(uint64(len(c.ParamList)))
	for _, p := range c.ParamList {
		bw.WriteB(byte(p))
	}
	bw.WriteB(byte(c.ReturnType))
	bw.WriteBool(c.HasStorage)
	bw.WriteString(c.Name)
	bw.WriteString(c.Version)
	bw.WriteString(c.Author)
	bw.WriteString(c.Email)
	bw.WriteString(c.Description)
}

// DecodeBinary implements the io.Serializable interface.
func (c *Contract) DecodeBinary(br *io.BinReader) {
	c.Script = br.ReadVarBytes()
	c.ParamList = make([]smartcontract.ParamType, br.ReadVarUint())
	for i := range c.ParamList {
		c.ParamList[i] = smartcontract.ParamType(br.ReadB())
	}
	c.ReturnType = smartcontract.ParamType(br.ReadB())
	c.HasStorage = br.ReadBool()
	c.Name = br.ReadString()
	c.Version = br.ReadString()
	c.Author = br.ReadString()
	c.Email = br.ReadString()
	c.Description = br.ReadString()
}

// EncodeBinary implements the io.Serializable interface.
func (v *Validator) EncodeBinary(bw *io.BinWriter) {
	bw.WriteVarBytes(v.PublicKey.Bytes())
	bw.WriteBool(v.Registered)
	bw.WriteU64LE(uint64(v.Votes))
}

// DecodeBinary implements the io.Serializable interface.
func (v *Validator) DecodeBinary(br *io.BinReader) {
	raw := br.ReadVarBytes()
	if br.Err == nil {
		v.PublicKey, br.Err = keys.DecodeBytes(raw)
	}
	v.Registered = br.ReadBool()
	v.Votes = util.Fixed8(br.ReadU64LE())
}
