// Package chaindump writes and reads a chain's blocks as a flat,
// lz4-compressed stream of length-prefixed records, for moving a ledger
// between a BoltDB-backed node and a portable archive without replaying a
// network sync.
package chaindump

import (
	"encoding/binary"
	"errors"
	"fmt"
	stdio "io"

	"github.com/pierrec/lz4"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/io"
)

// DumperRestorer is the subset of ledger.Chain a dump or restore needs.
// It's satisfied by both MemChain and StoreChain.
type DumperRestorer interface {
	Height() uint32
	GetBlock(hashOrIndex []byte) (*state.Block, error)
	AddBlock(b *state.Block) error
}

// Dump writes count blocks starting at start to w, lz4-compressing the
// stream as it goes. Each block is a uint32 length prefix followed by its
// encoded bytes.
func Dump(bc DumperRestorer, w stdio.Writer, start, count uint32) error {
	lzw := lz4.NewWriter(w)

	bw := io.NewBinWriterFromIO(lzw)
	for i := start; i < start+count; i++ {
		var idx [4]byte
		binary.LittleEndian.PutUint32(idx[:], i)
		b, err := bc.GetBlock(idx[:])
		if err != nil {
			return fmt.Errorf("failed to fetch block %d: %w", i, err)
		}

		buf := io.NewBufBinWriter()
		b.EncodeBinary(buf.BinWriter)
		raw := buf.Bytes()

		bw.WriteU32LE(uint32(len(raw)))
		bw.WriteBytes(raw)
		if bw.Err != nil {
			return bw.Err
		}
	}
	return lzw.Close()
}

// Restore reads blocks from r, an lz4-compressed stream produced by Dump,
// skipping the first skip records and adding the next count to bc. f, if
// non-nil, is called after every block is added. Restore stops cleanly if
// the stream runs out before count blocks have been read, so a caller can
// pass a count larger than the archive actually holds to mean "the rest".
func Restore(bc DumperRestorer, r stdio.Reader, skip, count uint32, f func(b *state.Block) error) error {
	lzr := lz4.NewReader(r)
	br := io.NewBinReaderFromIO(lzr)

	readBlock := func() ([]byte, error) {
		size := br.ReadU32LE()
		buf := make([]byte, size)
		br.ReadBytes(buf)
		return buf, br.Err
	}

	var i uint32
	for ; i < skip; i++ {
		if _, err := readBlock(); err != nil {
			return fmt.Errorf("failed to skip block %d: %w", i, err)
		}
	}

	for ; i < skip+count; i++ {
		raw, err := readBlock()
		if errors.Is(err, stdio.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read block %d: %w", i, err)
		}

		b := &state.Block{}
		blockReader := io.NewBinReaderFromBuf(raw)
		b.DecodeBinary(blockReader)
		if blockReader.Err != nil {
			return fmt.Errorf("failed to decode block %d: %w", i, blockReader.Err)
		}

		if err := bc.AddBlock(b); err != nil {
			return fmt.Errorf("failed to add block %d: %w", i, err)
		}
		if f != nil {
			if err := f(b); err != nil {
				return err
			}
		}
	}
	return nil
}
