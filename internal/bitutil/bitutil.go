// Package bitutil implements the bit and byte level primitives shared by
// every Parquet value and level codec: unsigned varints, ZigZag encoding,
// an LSB-first bit packer/unpacker, and little-endian fixed width helpers.
package bitutil

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ByteCount returns the number of bytes needed to hold bitCount bits.
func ByteCount(bitCount uint) uint {
	return (bitCount + 7) / 8
}

// BitWidth returns ⌈log2(maxValue+1)⌉, the number of bits needed to encode
// any value in [0, maxValue]. BitWidth(0) is 0.
func BitWidth(maxValue int) uint {
	width := uint(0)
	for v := uint(maxValue); v != 0; v >>= 1 {
		width++
	}
	return width
}

// PutUvarint appends the ULEB128 encoding of v to dst.
func PutUvarint(dst []byte, v uint64) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	return append(dst, buf[:n]...)
}

// PutVarint appends the ZigZag+ULEB128 encoding of v to dst.
func PutVarint(dst []byte, v int64) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], v)
	return append(dst, buf[:n]...)
}

// Uvarint reads a ULEB128 unsigned integer from src, returning the value,
// the number of bytes consumed, and an error if src was exhausted.
func Uvarint(src []byte) (uint64, int, error) {
	v, n := binary.Uvarint(src)
	if n == 0 {
		return 0, 0, fmt.Errorf("bitutil: %w", io.ErrUnexpectedEOF)
	}
	if n < 0 {
		return 0, 0, fmt.Errorf("bitutil: uvarint overflow")
	}
	return v, n, nil
}

// Varint reads a ZigZag+ULEB128 signed integer from src.
func Varint(src []byte) (int64, int, error) {
	v, n := binary.Varint(src)
	if n == 0 {
		return 0, 0, fmt.Errorf("bitutil: %w", io.ErrUnexpectedEOF)
	}
	if n < 0 {
		return 0, 0, fmt.Errorf("bitutil: varint overflow")
	}
	return v, n, nil
}

// ZigZag32 maps a signed 32 bit integer to an unsigned 32 bit integer so
// that small magnitude values (positive or negative) encode to small
// unsigned values.
func ZigZag32(v int32) uint32 { return (uint32(v) << 1) ^ uint32(v>>31) }

// UnZigZag32 is the inverse of ZigZag32.
func UnZigZag32(v uint32) int32 { return int32(v>>1) ^ -int32(v&1) }

// ZigZag64 maps a signed 64 bit integer to an unsigned 64 bit integer.
func ZigZag64(v int64) uint64 { return (uint64(v) << 1) ^ uint64(v>>63) }

// UnZigZag64 is the inverse of ZigZag64.
func UnZigZag64(v uint64) int64 { return int64(v>>1) ^ -int64(v&1) }

// Writer packs fixed bit-width values LSB-first into a byte buffer, the
// orientation used throughout Parquet's RLE/bit-packed hybrid and
// DELTA_BINARY_PACKED miniblocks: bit i of a value lands at
// byte_index = offset/8, bit_index = offset%8.
type Writer struct {
	buf    []byte
	bitPos uint
}

// NewWriter returns a bit Writer appending into buf (which may be nil).
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Bytes returns the accumulated buffer, padded to a whole byte.
func (w *Writer) Bytes() []byte { return w.buf }

// PutUint writes the low width bits of v, LSB-first.
func (w *Writer) PutUint(v uint64, width uint) {
	for b := uint(0); b < width; b++ {
		byteIndex := w.bitPos / 8
		bitIndex := w.bitPos % 8
		for uint(len(w.buf)) <= byteIndex {
			w.buf = append(w.buf, 0)
		}
		if (v>>b)&1 != 0 {
			w.buf[byteIndex] |= 1 << bitIndex
		}
		w.bitPos++
	}
}

// Reader unpacks fixed bit-width LSB-first values from a byte buffer.
type Reader struct {
	buf    []byte
	bitPos uint
}

// NewReader returns a bit Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// GetUint reads width bits LSB-first and returns them as an unsigned value.
func (r *Reader) GetUint(width uint) (uint64, error) {
	var v uint64
	for b := uint(0); b < width; b++ {
		byteIndex := r.bitPos / 8
		bitIndex := r.bitPos % 8
		if int(byteIndex) >= len(r.buf) {
			return 0, fmt.Errorf("bitutil: bit reader underflow: %w", io.ErrUnexpectedEOF)
		}
		bit := (r.buf[byteIndex] >> bitIndex) & 1
		v |= uint64(bit) << b
		r.bitPos++
	}
	return v, nil
}

// PutUint32LE appends the little-endian encoding of v to dst.
func PutUint32LE(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// PutUint64LE appends the little-endian encoding of v to dst.
func PutUint64LE(dst []byte, v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

// Uint32LE reads a little-endian uint32 from the front of src.
func Uint32LE(src []byte) (uint32, error) {
	if len(src) < 4 {
		return 0, fmt.Errorf("bitutil: %w", io.ErrUnexpectedEOF)
	}
	return binary.LittleEndian.Uint32(src), nil
}

// Uint64LE reads a little-endian uint64 from the front of src.
func Uint64LE(src []byte) (uint64, error) {
	if len(src) < 8 {
		return 0, fmt.Errorf("bitutil: %w", io.ErrUnexpectedEOF)
	}
	return binary.LittleEndian.Uint64(src), nil
}
