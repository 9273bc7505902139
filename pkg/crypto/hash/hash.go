// Package hash implements the hash functions the VM's crypto opcodes
// (SHA1, SHA256, HASH160, HASH256) are defined over.
package hash

import (
	"crypto/sha1" //nolint:gosec // SHA1 is a VM opcode the spec requires, not used for security here.
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck

	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// Sha1 implements the SHA1 opcode.
func Sha1(data []byte) []byte {
	h := sha1.Sum(data) //nolint:gosec
	return h[:]
}

// Sha256 implements the SHA256 opcode.
func Sha256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// RipeMD160 hashes data with RIPEMD160.
func RipeMD160(data []byte) []byte {
	r := ripemd160.New()
	r.Write(data)
	return r.Sum(nil)
}

// Hash160 implements the HASH160 opcode: SHA256 followed by RIPEMD160.
func Hash160(data []byte) util.Uint160 {
	return util.Uint160FromScript(data)
}

// Hash256 implements the HASH256 opcode: SHA256 applied twice.
func Hash256(data []byte) util.Uint256 {
	h1 := sha256.Sum256(data)
	h2 := sha256.Sum256(h1[:])
	var u util.Uint256
	copy(u[:], h2[:])
	return u
}
