package state

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// Validator is a consensus validator candidate, keyed by its public key
// in the ledger facade.
type Validator struct {
	PublicKey  *keys.PublicKey
	Registered bool
	Votes      util.Fixed8
}
