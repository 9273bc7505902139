package stackitem

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/encoding/bigint"
)

func toBytes(n *big.Int) []byte   { return bigint.ToBytes(n) }
func fromBytes(b []byte) *big.Int { return bigint.FromBytes(b) }
