package io

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// maxArraySize is a maximum size of an array that ReadArray/ReadVarBytes will
// decode without the caller supplying a smaller explicit limit.
const maxArraySize = 0x1000000

// BinReader is a convenient wrapper around an io.Reader and an accumulated
// error, used to simplify decoding of the binary wire formats consumed by
// the VM (scripts, witnesses, block/transaction payloads) without checking
// an error after every single field.
type BinReader struct {
	r   io.Reader
	Err error
}

// NewBinReaderFromIO makes a BinReader from io.Reader.
func NewBinReaderFromIO(ior io.Reader) *BinReader {
	return &BinReader{r: ior}
}

// NewBinReaderFromBuf makes a BinReader from a byte buffer.
func NewBinReaderFromBuf(b []byte) *BinReader {
	return NewBinReaderFromIO(bytes.NewReader(b))
}

// ReadU64LE reads a little-endian encoded uint64 from the underlying stream.
func (r *BinReader) ReadU64LE() uint64 {
	var b [8]byte
	r.ReadBytes(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// ReadU32LE reads a little-endian encoded uint32 from the underlying stream.
func (r *BinReader) ReadU32LE() uint32 {
	var b [4]byte
	r.ReadBytes(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// ReadU16LE reads a little-endian encoded uint16 from the underlying stream.
func (r *BinReader) ReadU16LE() uint16 {
	var b [2]byte
	r.ReadBytes(b[:])
	return binary.LittleEndian.Uint16(b[:])
}

// ReadI16LE reads a little-endian encoded signed int16, used for jump offsets.
func (r *BinReader) ReadI16LE() int16 {
	return int16(r.ReadU16LE())
}

// ReadB reads a single byte from the underlying stream.
func (r *BinReader) ReadB() byte {
	var b [1]byte
	r.ReadBytes(b[:])
	return b[0]
}

// ReadBool reads a single byte and interprets it as a boolean.
func (r *BinReader) ReadBool() bool {
	return r.ReadB() != 0
}

// ReadBytes reads exactly len(buf) bytes into buf.
func (r *BinReader) ReadBytes(buf []byte) {
	if r.Err != nil {
		return
	}
	_, r.Err = io.ReadFull(r.r, buf)
}

// ReadVarUint reads a variable-length-encoded unsigned integer (the same
// format used by the original Satoshi wire protocol NEO inherited).
func (r *BinReader) ReadVarUint() uint64 {
	b := r.ReadB()
	switch b {
	case 0xfd:
		return uint64(r.ReadU16LE())
	case 0xfe:
		return uint64(r.ReadU32LE())
	case 0xff:
		return r.ReadU64LE()
	default:
		return uint64(b)
	}
}

// ReadVarBytes reads a length-prefixed byte slice, bounded by maxSize (or
// maxArraySize if none is given).
func (r *BinReader) ReadVarBytes(maxSize ...int) []byte {
	n := r.ReadVarUint()
	ms := maxArraySize
	if len(maxSize) != 0 {
		ms = maxSize[0]
	}
	if n > uint64(ms) {
		if r.Err == nil {
			r.Err = fmt.Errorf("byte array of size %d exceeds maximum of %d", n, ms)
		}
		return nil
	}
	b := make([]byte, n)
	r.ReadBytes(b)
	return b
}

// ReadString reads a length-prefixed UTF-8 string.
func (r *BinReader) ReadString() string {
	return string(r.ReadVarBytes())
}
