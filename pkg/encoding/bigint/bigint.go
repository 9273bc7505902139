// Package bigint converts between arbitrary-precision integers and the
// little-endian two's-complement byte encoding the VM's Integer stack item
// uses for asBuffer/asBigInteger coercions (spec §3, §4.1).
package bigint

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/util/slice"
)

var one = big.NewInt(1)

// FromBytes converts little-endian two's-complement data to an integer. An
// empty slice decodes to zero, matching the spec's Integer/Buffer round-trip
// invariant.
func FromBytes(data []byte) *big.Int {
	if len(data) == 0 {
		return big.NewInt(0)
	}
	be := slice.CopyReverse(data)
	n := new(big.Int).SetBytes(be)
	if be[0]&0x80 == 0 {
		return n
	}
	// Negative: n currently holds the unsigned value of the two's-complement
	// pattern; the signed value is n - 2^(8*len(data)).
	mod := new(big.Int).Lsh(one, uint(8*len(data)))
	return n.Sub(n, mod)
}

// ToBytes converts n to its little-endian two's-complement encoding, using
// the minimal number of bytes (zero encodes to an empty slice).
func ToBytes(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{}
	}

	nBits := n.BitLen() + 1 // +1 reserves the sign bit.
	if n.Sign() < 0 {
		// -n-1 is the magnitude whose bit length tells us whether the sign
		// bit is already implied by the top set bit, e.g. -128 needs only
		// one byte (0x80) while -129 needs two.
		m := new(big.Int).Add(n, one)
		m.Neg(m)
		nBits = m.BitLen() + 1
	}
	nBytes := (nBits + 7) / 8

	mod := new(big.Int).Lsh(one, uint(nBytes*8))
	u := new(big.Int).Mod(n, mod) // Euclidean mod: always in [0, mod).

	be := u.Bytes()
	if len(be) < nBytes {
		padded := make([]byte, nBytes)
		copy(padded[nBytes-len(be):], be)
		be = padded
	}
	return slice.Reverse(be)
}
