package state

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/io"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/stretchr/testify/require"
)

func encodeDecode(t *testing.T, enc io.Serializable, dec io.Serializable) {
	var buf bytes.Buffer
	bw := io.NewBinWriterFromIO(&buf)
	enc.EncodeBinary(bw)
	require.NoError(t, bw.Err)

	br := io.NewBinReaderFromBuf(buf.Bytes())
	dec.DecodeBinary(br)
	require.NoError(t, br.Err)
}

func TestHeaderEncodeDecode(t *testing.T) {
	h := &Header{
		Version:       0,
		Timestamp:     1600000000,
		Index:         42,
		ConsensusData: 12345,
		Witness: Witness{
			InvocationScript:   []byte{0x01, 0x02},
			VerificationScript: []byte{0x51},
		},
	}
	h.Hash = util.Uint256{1, 2, 3}
	h.PrevHash = util.Uint256{4, 5, 6}
	h.MerkleRoot = util.Uint256{7, 8, 9}
	h.NextConsensus = util.Uint160{9, 9, 9}

	var out Header
	encodeDecode(t, h, &out)

	require.Equal(t, h.Hash, out.Hash)
	require.Equal(t, h.PrevHash, out.PrevHash)
	require.Equal(t, h.MerkleRoot, out.MerkleRoot)
	require.Equal(t, h.Timestamp, out.Timestamp)
	require.Equal(t, h.Index, out.Index)
	require.Equal(t, h.ConsensusData, out.ConsensusData)
	require.Equal(t, h.NextConsensus, out.NextConsensus)
	require.Equal(t, h.Witness, out.Witness)
}

func TestTransactionEncodeDecode(t *testing.T) {
	tx := &Transaction{
		Hash: util.Uint256{1},
		Type: ContractTransaction,
		Attributes: []Attribute{
			{Usage: AttrRemark, Data: []byte("hi")},
		},
		Inputs: []Input{
			{PrevHash: util.Uint256{2}, PrevIndex: 3},
		},
		Outputs: []Output{
			{AssetID: util.Uint256{4}, Value: util.Fixed8(100), ScriptHash: util.Uint160{5}},
		},
		Witnesses: []Witness{
			{InvocationScript: []byte{1}, VerificationScript: []byte{2}},
		},
		RawMessage: []byte{0xAA, 0xBB},
	}

	var out Transaction
	encodeDecode(t, tx, &out)

	require.Equal(t, tx.Hash, out.Hash)
	require.Equal(t, tx.Type, out.Type)
	require.Equal(t, tx.Attributes, out.Attributes)
	require.Equal(t, tx.Inputs, out.Inputs)
	require.Equal(t, tx.Outputs, out.Outputs)
	require.Equal(t, tx.Witnesses, out.Witnesses)
	require.Equal(t, tx.RawMessage, out.RawMessage)
}

func TestAccountEncodeDecode(t *testing.T) {
	acc := NewAccount(util.Uint160{1, 2, 3})
	acc.IsFrozen = true
	acc.Balances[util.Uint256{9}] = util.Fixed8(500)

	var out Account
	encodeDecode(t, acc, &out)

	require.Equal(t, acc.ScriptHash, out.ScriptHash)
	require.Equal(t, acc.IsFrozen, out.IsFrozen)
	require.Equal(t, acc.Balances, out.Balances)
	require.Empty(t, out.Votes)
}

func TestContractEncodeDecode(t *testing.T) {
	c := &Contract{
		Script:      []byte{0x51, 0x52},
		HasStorage:  true,
		Name:        "test",
		Version:     "1.0",
		Author:      "me",
		Email:       "me@example.com",
		Description: "a contract",
	}

	var out Contract
	encodeDecode(t, c, &out)

	require.Equal(t, c.Script, out.Script)
	require.Equal(t, c.HasStorage, out.HasStorage)
	require.Equal(t, c.Name, out.Name)
	require.Equal(t, c.Version, out.Version)
	require.Equal(t, c.Author, out.Author)
	require.Equal(t, c.Email, out.Email)
	require.Equal(t, c.Description, out.Description)
}

func TestBlockEncodeDecode(t *testing.T) {
	b := &Block{
		Header: Header{
			Index: 7,
			Witness: Witness{
				VerificationScript: []byte{0x51},
			},
		},
		Transactions: []*Transaction{
			{Hash: util.Uint256{1}, Type: MinerTransaction},
		},
	}

	var out Block
	encodeDecode(t, b, &out)

	if b.Header.Index != out.Header.Index || len(out.Transactions) != 1 {
		t.Logf("original:\n%s\ndecoded:\n%s", spew.Sdump(b), spew.Sdump(&out))
	}

	require.Equal(t, b.Header.Index, out.Header.Index)
	require.Len(t, out.Transactions, 1)
	require.Equal(t, b.Transactions[0].Hash, out.Transactions[0].Hash)
}
