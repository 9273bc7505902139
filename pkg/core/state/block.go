package state

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/io"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// Header is a block header: everything but the transaction list.
type Header struct {
	Hash          util.Uint256
	Version       uint32
	PrevHash      util.Uint256
	MerkleRoot    util.Uint256
	Timestamp     uint32
	Index         uint32
	ConsensusData uint64
	NextConsensus util.Uint160
	Witness       Witness
}

// Block is a full block: a Header plus its transactions.
type Block struct {
	Header
	Transactions []*Transaction
}

// Kind implements the ScriptContainer interface.
func (b *Block) Kind() ContainerKind { return ContainerBlock }

// Message implements the ScriptContainer interface: blocks sign their
// header bytes excluding the witness.
func (b *Block) Message() []byte {
	w := io.NewBufBinWriter()
	w.WriteBytes(b.Hash.BytesBE())
	w.WriteU32LE(b.Version)
	w.WriteBytes(b.PrevHash.BytesBE())
	w.WriteBytes(b.MerkleRoot.BytesBE())
	w.WriteU32LE(b.Timestamp)
	w.WriteU32LE(b.Index)
	w.WriteU64LE(b.ConsensusData)
	w.WriteBytes(b.NextConsensus.BytesBE())
	return w.Bytes()
}

// WitnessHashes implements the ScriptContainer interface.
func (b *Block) WitnessHashes() []util.Uint160 {
	return []util.Uint160{b.Witness.ScriptHash()}
}
