package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // matches the hash the classic VM's HASH160 opcode produces.

	"github.com/nspcc-dev/neo-go-classicvm/pkg/util/slice"
)

const uint160Size = 20

// Uint160 is a 20-byte script hash, the identifier for accounts and
// contracts throughout the VM and its syscall catalogue.
type Uint160 [uint160Size]byte

// Uint160DecodeStringBE decodes a big-endian hex string into a Uint160.
func Uint160DecodeStringBE(s string) (u Uint160, err error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != uint160Size*2 {
		return u, fmt.Errorf("expected string size of %d got %d", uint160Size*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return u, err
	}
	return Uint160DecodeBytesBE(b)
}

// Uint160DecodeBytesBE decodes a big-endian byte slice into a Uint160.
func Uint160DecodeBytesBE(b []byte) (u Uint160, err error) {
	if len(b) != uint160Size {
		return u, fmt.Errorf("expected []byte of size %d got %d", uint160Size, len(b))
	}
	copy(u[:], b)
	return
}

// Uint160DecodeBytesLE decodes a little-endian byte slice (the form the VM
// pushes onto the stack and serializes on the wire) into a Uint160.
func Uint160DecodeBytesLE(b []byte) (Uint160, error) {
	if len(b) != uint160Size {
		return Uint160{}, fmt.Errorf("expected []byte of size %d got %d", uint160Size, len(b))
	}
	return Uint160DecodeBytesBE(slice.CopyReverse(b))
}

// Uint160FromScript computes the script hash (HASH160) of a contract's
// script: SHA256 followed by RIPEMD160, exactly as the VM's HASH160 opcode
// does for any buffer.
func Uint160FromScript(script []byte) Uint160 {
	sha := sha256.Sum256(script)
	r := ripemd160.New()
	r.Write(sha[:])
	var u Uint160
	copy(u[:], r.Sum(nil))
	return u
}

// BytesBE returns the big-endian byte slice representation of u.
func (u Uint160) BytesBE() []byte {
	b := make([]byte, uint160Size)
	copy(b, u[:])
	return b
}

// BytesLE returns the little-endian byte slice representation of u, the
// form the VM pushes onto the stack and serializes on the wire.
func (u Uint160) BytesLE() []byte {
	return slice.CopyReverse(u.BytesBE())
}

// Bytes returns the little-endian byte slice representation of u, the
// form a Buffer-coerced stack item carries.
func (u Uint160) Bytes() []byte { return u.BytesLE() }

// StringBE implements a big-endian hex stringer, as used for display.
func (u Uint160) StringBE() string {
	return hex.EncodeToString(u.BytesBE())
}

// Equals reports whether u and other are the same hash.
func (u Uint160) Equals(other Uint160) bool {
	return u == other
}

// String implements the fmt.Stringer interface.
func (u Uint160) String() string {
	return u.StringBE()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (u *Uint160) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	*u, err = Uint160DecodeStringBE(js)
	return err
}

// MarshalJSON implements the json.Marshaler interface.
func (u Uint160) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + u.StringBE())
}
