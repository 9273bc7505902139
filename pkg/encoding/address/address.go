// Package address renders and parses the base58check "NEO address" text
// form of a Uint160 script hash. The VM itself never needs addresses —
// witnesses and CheckWitness operate on raw UInt160 — but the debugger CLI
// (cmd/neovm) prints them for readability, the way the teacher's wallet and
// RPC layers do.
package address

import (
	"bytes"
	"errors"

	"github.com/mr-tron/base58"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// Version is the NEO address version byte prepended before base58check
// encoding.
const Version = 0x17

// Encode returns the "NEO address" string for the given script hash.
func Encode(u util.Uint160) string {
	payload := append([]byte{Version}, u.BytesBE()...)
	checksum := hash.Hash256(payload)
	payload = append(payload, checksum.BytesBE()[:4]...)
	return base58.Encode(payload)
}

// Decode parses a "NEO address" string back into a script hash.
func Decode(s string) (util.Uint160, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return util.Uint160{}, err
	}
	if len(b) < 5 {
		return util.Uint160{}, errors.New("invalid address length")
	}
	payload, checksum := b[:len(b)-4], b[len(b)-4:]
	expected := hash.Hash256(payload)
	if !bytes.Equal(checksum, expected.BytesBE()[:4]) {
		return util.Uint160{}, errors.New("invalid address checksum")
	}
	return util.Uint160DecodeBytesBE(payload[1:])
}
