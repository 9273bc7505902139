package ledger

import (
	"testing"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/storage"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestStoreChainBlocksAndAccounts(t *testing.T) {
	c, err := NewStoreChain(storage.NewMemStore())
	require.NoError(t, err)

	b := &state.Block{
		Header: state.Header{
			Hash:  util.Uint256{1},
			Index: 1,
		},
	}
	require.NoError(t, c.AddBlock(b))
	require.Equal(t, uint32(1), c.Height())

	got, err := c.GetBlock(b.Hash.BytesLE())
	require.NoError(t, err)
	require.Equal(t, b.Index, got.Index)

	gotByIdx, err := c.GetHeader([]byte{1})
	require.NoError(t, err)
	require.Equal(t, b.Hash, gotByIdx.Hash)

	acc := state.NewAccount(util.Uint160{7})
	acc.Balances[util.Uint256{9}] = util.Fixed8(42)
	require.NoError(t, c.PutAccount(acc))

	got2, err := c.GetAccount(util.Uint160{7})
	require.NoError(t, err)
	require.Equal(t, acc.Balances, got2.Balances)

	require.NoError(t, c.DeleteAccount(util.Uint160{7}))
	_, err = c.GetAccount(util.Uint160{7})
	require.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStoreChainStorage(t *testing.T) {
	c, err := NewStoreChain(storage.NewMemStore())
	require.NoError(t, err)

	hash := util.Uint160{3}
	require.NoError(t, c.StoragePut(hash, []byte("k1"), []byte("v1")))
	require.NoError(t, c.StoragePut(hash, []byte("k2"), []byte("v2")))

	v, ok, err := c.StorageGet(hash, []byte("k1"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v1"), v)

	all, err := c.StorageGetAll(hash)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, c.StorageDelete(hash, []byte("k1")))
	_, ok, err = c.StorageGet(hash, []byte("k1"))
	require.NoError(t, err)
	require.False(t, ok)
}
