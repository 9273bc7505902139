package state

import "github.com/nspcc-dev/neo-go-classicvm/pkg/util"

// StorageContext is the capability token Storage.GetContext returns,
// authorizing Put/Get/Delete against the contract it's bound to (spec §4.4,
// §GLOSSARY "Storage context").
type StorageContext struct {
	ScriptHash util.Uint160
}
