package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, s Store) {
	_, err := s.Get([]byte("missing"))
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Put([]byte("a"), []byte("1")))
	require.NoError(t, s.Put([]byte("b"), []byte("2")))
	require.NoError(t, s.Put([]byte("c"), []byte("3")))

	v, err := s.Get([]byte("b"))
	require.NoError(t, err)
	require.Equal(t, []byte("2"), v)

	require.NoError(t, s.Delete([]byte("b")))
	_, err = s.Get([]byte("b"))
	require.ErrorIs(t, err, ErrKeyNotFound)

	var seen []string
	require.NoError(t, s.Seek([]byte(""), func(k, v []byte) bool {
		seen = append(seen, string(k))
		return true
	}))
	require.ElementsMatch(t, []string{"a", "c"}, seen)
}

func TestMemStore(t *testing.T) {
	testStore(t, NewMemStore())
}

func TestBoltStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewBoltStore(filepath.Join(dir, "chain.db"))
	require.NoError(t, err)
	defer s.Close()

	testStore(t, s)
}
