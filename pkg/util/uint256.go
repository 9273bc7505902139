package util

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/util/slice"
)

const uint256Size = 32

// Uint256 is a 32-byte hash, used for block, header and transaction
// identifiers.
type Uint256 [uint256Size]byte

// Uint256DecodeStringBE decodes a big-endian hex string into a Uint256.
func Uint256DecodeStringBE(s string) (u Uint256, err error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != uint256Size*2 {
		return u, fmt.Errorf("expected string size of %d got %d", uint256Size*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return u, err
	}
	return Uint256DecodeBytesBE(b)
}

// Uint256DecodeBytesBE decodes a big-endian byte slice into a Uint256.
func Uint256DecodeBytesBE(b []byte) (u Uint256, err error) {
	if len(b) != uint256Size {
		return u, fmt.Errorf("expected []byte of size %d got %d", uint256Size, len(b))
	}
	copy(u[:], b)
	return
}

// Uint256DecodeBytesLE decodes a little-endian byte slice (the form
// `Blockchain.GetHeader`/`GetBlock` accept on the stack) into a Uint256.
func Uint256DecodeBytesLE(b []byte) (Uint256, error) {
	return Uint256DecodeBytesBE(slice.CopyReverse(b))
}

// BytesBE returns the big-endian byte slice representation of u.
func (u Uint256) BytesBE() []byte {
	b := make([]byte, uint256Size)
	copy(b, u[:])
	return b
}

// BytesLE returns the little-endian byte slice representation of u.
func (u Uint256) BytesLE() []byte {
	return slice.CopyReverse(u.BytesBE())
}

// Bytes returns the little-endian byte slice representation of u, the
// form a Buffer-coerced stack item carries.
func (u Uint256) Bytes() []byte { return u.BytesLE() }

// StringBE returns the big-endian hex representation of u.
func (u Uint256) StringBE() string {
	return hex.EncodeToString(u.BytesBE())
}

// Equals reports whether u and other are the same hash.
func (u Uint256) Equals(other Uint256) bool {
	return u == other
}

// String implements the fmt.Stringer interface.
func (u Uint256) String() string {
	return u.StringBE()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (u *Uint256) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	*u, err = Uint256DecodeStringBE(js)
	return err
}

// MarshalJSON implements the json.Marshaler interface.
func (u Uint256) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + u.StringBE())
}
