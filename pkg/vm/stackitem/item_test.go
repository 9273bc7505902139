package stackitem

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	require.Equal(t, NewBoolean(true), Make(true))
	require.Equal(t, NewInteger(big.NewInt(3)), Make(3))
	require.Equal(t, NewInteger(big.NewInt(3)), Make(int64(3)))
	require.Equal(t, NewBuffer([]byte("abc")), Make("abc"))
	require.Equal(t, NewBuffer([]byte{1, 2, 3}), Make([]byte{1, 2, 3}))
}

func TestEqualsNumeric(t *testing.T) {
	require.True(t, NewInteger(big.NewInt(1)).Equals(NewBoolean(true)))
	require.True(t, NewBuffer([]byte{1}).Equals(NewInteger(big.NewInt(1))))
	require.False(t, NewInteger(big.NewInt(2)).Equals(NewBoolean(true)))
}

func TestArrayAliasesOnDup(t *testing.T) {
	arr := NewArray([]Item{NewInteger(big.NewInt(1))})
	dup := arr.Dup()
	require.True(t, dup == arr)
}

func TestStructAliasesOnDup(t *testing.T) {
	s := NewStruct([]Item{NewInteger(big.NewInt(1))})
	dup := s.Dup()
	require.True(t, dup == s)
}

func TestStructClone(t *testing.T) {
	inner := NewStruct([]Item{NewInteger(big.NewInt(5))})
	outer := NewStruct([]Item{inner})
	clone := outer.Clone()
	require.False(t, clone == outer)

	innerClone, err := clone.At(0)
	require.NoError(t, err)
	require.False(t, innerClone == inner)
}
