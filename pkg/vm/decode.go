package vm

import (
	"encoding/binary"
	"fmt"
)

// readByte reads one byte at PC and advances PC.
func (c *Context) readByte() (byte, error) {
	if int(c.PC) >= len(c.Code) {
		return 0, ErrCodeOverflow
	}
	b := c.Code[c.PC]
	c.PC++
	return b, nil
}

// readBytes reads n bytes starting at PC and advances PC by n.
func (c *Context) readBytes(n int) ([]byte, error) {
	if n < 0 || int(c.PC)+n > len(c.Code) {
		return nil, ErrCodeOverflow
	}
	b := c.Code[c.PC : int(c.PC)+n]
	c.PC += uint32(n)
	return b, nil
}

// readUint16LE reads a little-endian uint16 at PC and advances PC by 2.
func (c *Context) readUint16LE() (uint16, error) {
	b, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// readInt16LE reads a little-endian int16 at PC and advances PC by 2.
func (c *Context) readInt16LE() (int16, error) {
	v, err := c.readUint16LE()
	return int16(v), err
}

// readUint32LE reads a little-endian uint32 at PC and advances PC by 4.
func (c *Context) readUint32LE() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// jumpTarget computes the spec's "−3" offset adjustment: pc already points
// just past the 2-byte offset field when this is called, so the target is
// relative to the opcode byte itself.
func jumpTarget(pcAfterOffset uint32, offset int16) (uint32, error) {
	target := int64(pcAfterOffset) + int64(offset) - 3
	if target < 0 {
		return 0, fmt.Errorf("%w: jump target %d negative", ErrCodeOverflow, target)
	}
	return uint32(target), nil
}
