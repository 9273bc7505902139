// Package keys implements the ECPoint stack item the VM's CHECKSIG and
// CHECKMULTISIG opcodes verify against: a point on the P-256 curve NEO
// signs with, encoded the same way C#'s ECPoint is (a single 0x00 byte for
// infinity, or a 33-byte compressed point).
package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"errors"
	"math/big"
)

// PublicKey represents an EC point on the P-256 curve, NEO's "ECPoint".
type PublicKey struct {
	X, Y *big.Int
}

// IsInfinity reports whether p is the point at infinity.
func (p *PublicKey) IsInfinity() bool {
	return p.X == nil && p.Y == nil
}

// Bytes returns the compressed encoding of p: a single 0x00 for infinity,
// otherwise a 0x02/0x03 prefix followed by the 32-byte X coordinate.
func (p *PublicKey) Bytes() []byte {
	if p.IsInfinity() {
		return []byte{0x00}
	}
	x := p.X.Bytes()
	padded := make([]byte, 32)
	copy(padded[32-len(x):], x)
	prefix := byte(0x03)
	if p.Y.Bit(0) == 0 {
		prefix = 0x02
	}
	return append([]byte{prefix}, padded...)
}

// DecodeBytes decodes a PublicKey from its compressed, uncompressed or
// infinity encoding.
func DecodeBytes(data []byte) (*PublicKey, error) {
	switch len(data) {
	case 1:
		if data[0] != 0x00 {
			return nil, errors.New("invalid infinity point encoding")
		}
		return &PublicKey{}, nil
	case 33:
		if data[0] != 0x02 && data[0] != 0x03 {
			return nil, errors.New("invalid compressed point prefix")
		}
		curve := elliptic.P256()
		x := new(big.Int).SetBytes(data[1:])
		y, err := decompressY(x, uint(data[0]&0x01), curve)
		if err != nil {
			return nil, err
		}
		return &PublicKey{X: x, Y: y}, nil
	case 65:
		if data[0] != 0x04 {
			return nil, errors.New("invalid uncompressed point prefix")
		}
		x := new(big.Int).SetBytes(data[1:33])
		y := new(big.Int).SetBytes(data[33:65])
		if !elliptic.P256().IsOnCurve(x, y) {
			return nil, errors.New("point is not on the P256 curve")
		}
		return &PublicKey{X: x, Y: y}, nil
	default:
		return nil, errors.New("invalid public key encoding length")
	}
}

// decompressY recovers Y from X and its parity bit on a short-Weierstrass
// curve y^2 = x^3 - 3x + b (P-256's form).
func decompressY(x *big.Int, ylsb uint, curve elliptic.Curve) (*big.Int, error) {
	params := curve.Params()
	xCubed := new(big.Int).Exp(x, big.NewInt(3), params.P)
	threeX := new(big.Int).Mul(x, big.NewInt(3))
	threeX.Mod(threeX, params.P)
	ySquared := new(big.Int).Sub(xCubed, threeX)
	ySquared.Add(ySquared, params.B)
	ySquared.Mod(ySquared, params.P)
	y := new(big.Int).ModSqrt(ySquared, params.P)
	if y == nil {
		return nil, errors.New("point is not on the P256 curve")
	}
	if y.Bit(0) != ylsb {
		y.Sub(params.P, y)
	}
	return y, nil
}

// Equal reports whether p and other describe the same point.
func (p *PublicKey) Equal(other *PublicKey) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() == other.IsInfinity()
	}
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}

// VerifySignature verifies sig (r||s, 32 bytes each, NEO's compact ECDSA
// encoding) against msg under p. Used by CHECKSIG/CHECKMULTISIG.
func (p *PublicKey) VerifySignature(msg, sig []byte) bool {
	if p.IsInfinity() || len(sig) != 64 {
		return false
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	pub := &ecdsa.PublicKey{Curve: elliptic.P256(), X: p.X, Y: p.Y}
	digest := sha256.Sum256(msg)
	return ecdsa.Verify(pub, digest[:], r, s)
}
