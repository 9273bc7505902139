package io

// Serializable defines the binary encoding/decoding interface every wire
// type in the ledger facade implements.
type Serializable interface {
	EncodeBinary(w *BinWriter)
	DecodeBinary(r *BinReader)
}
