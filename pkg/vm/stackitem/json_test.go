package stackitem

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	testCases := []struct {
		item     Item
		expected string
	}{
		{NewBoolean(true), "true"},
		{NewBoolean(false), "false"},
		{NewInteger(big.NewInt(42)), "42"},
		{NewInteger(big.NewInt(-1)), "-1"},
		{NewBuffer([]byte("abc")), `"YWJj"`},
		{NewArray([]Item{NewInteger(big.NewInt(1)), NewBoolean(true)}), "[1,true]"},
	}
	for _, tc := range testCases {
		data, err := ToJSON(tc.item)
		require.NoError(t, err)
		require.Equal(t, tc.expected, string(data))
	}
}

func TestToJSONTooBigInteger(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	_, err := ToJSON(NewInteger(huge))
	require.Error(t, err)
}

func TestToJSONObjectFails(t *testing.T) {
	_, err := ToJSON(NewObject(KindAccount, nil))
	require.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	it, err := FromJSON([]byte("42"))
	require.NoError(t, err)
	n, err := it.AsBigInteger()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), n)

	it, err = FromJSON([]byte(`"YWJj"`))
	require.NoError(t, err)
	buf, err := it.AsBuffer()
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), buf)

	it, err = FromJSON([]byte("[1,true]"))
	require.NoError(t, err)
	arr, err := it.AsArray()
	require.NoError(t, err)
	require.Len(t, arr, 2)
}

func TestFromJSONRoundTrip(t *testing.T) {
	orig := NewArray([]Item{NewInteger(big.NewInt(7)), NewBuffer([]byte{1, 2})})
	data, err := ToJSON(orig)
	require.NoError(t, err)

	back, err := FromJSON(data)
	require.NoError(t, err)
	backArr, err := back.AsArray()
	require.NoError(t, err)
	require.Len(t, backArr, 2)
}
