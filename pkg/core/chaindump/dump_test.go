package chaindump

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/ledger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

func block(index uint32) *state.Block {
	b := &state.Block{
		Header: state.Header{
			Index: index,
			Witness: state.Witness{
				VerificationScript: []byte{0x51},
			},
		},
	}
	b.Hash = util.Uint256{byte(index), 1, 2, 3}
	return b
}

func TestDumpRestoreRoundTrip(t *testing.T) {
	src := ledger.NewMemChain()
	for i := uint32(0); i < 5; i++ {
		require.NoError(t, src.AddBlock(block(i)))
	}

	var buf bytes.Buffer
	require.NoError(t, Dump(src, &buf, 0, 5))

	dst := ledger.NewMemChain()
	var restored []uint32
	err := Restore(dst, &buf, 0, 100, func(b *state.Block) error {
		restored = append(restored, b.Index)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 1, 2, 3, 4}, restored)
	require.Equal(t, uint32(4), dst.Height())
}

func TestDumpRestoreSkip(t *testing.T) {
	src := ledger.NewMemChain()
	for i := uint32(0); i < 3; i++ {
		require.NoError(t, src.AddBlock(block(i)))
	}

	var buf bytes.Buffer
	require.NoError(t, Dump(src, &buf, 0, 3))

	dst := ledger.NewMemChain()
	var restored []uint32
	err := Restore(dst, &buf, 2, 100, func(b *state.Block) error {
		restored = append(restored, b.Index)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []uint32{2}, restored)
}
