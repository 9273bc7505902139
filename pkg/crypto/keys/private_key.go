package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"

	"github.com/nspcc-dev/rfc6979"
)

// PrivateKey wraps a P-256 ECDSA private key. It exists only to produce
// test fixtures and witness scripts for the debugger CLI (`cmd/neovm sign`)
// — the VM itself never holds a private key, only ECPoints and signatures.
type PrivateKey struct {
	ecdsa.PrivateKey
}

// NewPrivateKey generates a fresh random private key.
func NewPrivateKey() (*PrivateKey, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{*priv}, nil
}

// PublicKey returns the ECPoint corresponding to k.
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{X: k.X, Y: k.Y}
}

// Sign produces a deterministic (RFC 6979) compact ECDSA signature over
// msg, in the r||s 64-byte form CHECKSIG/CHECKMULTISIG verify.
func (k *PrivateKey) Sign(msg []byte) []byte {
	digest := sha256.Sum256(msg)
	r, s := rfc6979.SignECDSA(&k.PrivateKey, digest[:], sha256.New)
	sig := make([]byte, 64)
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:])
	return sig
}
