package state

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// AssetType tags the kind of asset (spec §4.4 Asset.Create forbids
// registering GoverningToken/UtilityToken again).
type AssetType byte

// The two reserved native asset types plus the generic share/token type.
const (
	GoverningToken AssetType = 0x00
	UtilityToken   AssetType = 0x01
	Share          AssetType = 0x90
	Token          AssetType = 0x91
)

// Asset is a registered asset (NEO's "first-class" asset model).
type Asset struct {
	ID         util.Uint256
	Type       AssetType
	Name       string
	Amount     util.Fixed8
	Available  util.Fixed8
	Precision  byte
	Owner      *keys.PublicKey
	Admin      util.Uint160
	Issuer     util.Uint160
	Expiration uint32
}
