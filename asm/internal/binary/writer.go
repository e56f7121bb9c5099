package binary

import (
	"fmt"
	"math/big"
)

// Writer provides append-and-patch writing for bytecode assembly.
// The buffer grows only through the append methods; Patch overwrites
// previously reserved regions in place.
type Writer struct {
	buf []byte
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the written bytes. The slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Byte appends a single byte.
func (w *Writer) Byte(b byte) {
	w.buf = append(w.buf, b)
}

// Write appends a byte slice.
func (w *Writer) Write(data []byte) {
	w.buf = append(w.buf, data...)
}

// Reserve appends n zero bytes and returns the offset of the first one.
func (w *Writer) Reserve(n int) int {
	pos := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	return pos
}

// PatchUintBE overwrites width bytes at pos with v encoded big-endian.
// It fails if the region lies outside the buffer or v needs more than
// width bytes.
func (w *Writer) PatchUintBE(pos, width int, v uint64) error {
	if pos < 0 || width < 1 || pos+width > len(w.buf) {
		return fmt.Errorf("patch region [%d, %d) outside buffer of length %d", pos, pos+width, len(w.buf))
	}
	if width < 8 && v >= uint64(1)<<(8*width) {
		return fmt.Errorf("value %d does not fit in %d bytes", v, width)
	}
	for i := 0; i < width; i++ {
		w.buf[pos+i] = byte(v >> (8 * (width - i - 1)))
	}
	return nil
}

// CompactUint encodes a non-negative integer as minimal big-endian bytes,
// at least one byte even for zero. Negative values yield nil.
func CompactUint(v *big.Int) []byte {
	if v == nil || v.Sign() < 0 {
		return nil
	}
	data := v.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}
	return data
}
