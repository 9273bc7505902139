package stackitem

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	items := []Item{
		NewBoolean(true),
		NewBoolean(false),
		NewInteger(big.NewInt(12345)),
		NewInteger(big.NewInt(-12345)),
		NewBuffer([]byte("hello")),
		NewArray([]Item{NewInteger(big.NewInt(1)), NewBoolean(true)}),
		NewStruct([]Item{NewBuffer([]byte{1, 2, 3})}),
	}
	for _, it := range items {
		data, err := Serialize(it)
		require.NoError(t, err)

		back, err := Deserialize(data)
		require.NoError(t, err)
		require.Equal(t, it.Type(), back.Type())
	}
}

func TestSerializeObjectFails(t *testing.T) {
	obj := NewObject(KindAccount, nil)
	_, err := Serialize(obj)
	require.Error(t, err)
}

func BenchmarkEncodeBinary(b *testing.B) {
	items := make([]Item, 15)
	for i := range items {
		items[i] = NewInteger(big.NewInt(int64(i)))
	}
	arr := NewArray(items)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Serialize(arr); err != nil {
			b.FailNow()
		}
	}
}
