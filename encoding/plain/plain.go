// Package plain implements Parquet's PLAIN encoding: fixed-width
// little-endian values for the numeric physical types, a 4-byte length
// prefix per value for BYTE_ARRAY, and no framing at all for
// FIXED_LEN_BYTE_ARRAY (the type_length is carried out of band in the
// schema). BOOLEAN's 1-bit-per-value packing lives in encoding/rle since it
// shares the same bit writer/reader as the level codec.
package plain

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DecodeInt32 decodes count little-endian INT32 values.
func DecodeInt32(src []byte, count int) ([]int32, error) {
	if len(src) < count*4 {
		return nil, fmt.Errorf("plain: int32 stream: %w", io.ErrUnexpectedEOF)
	}
	out := make([]int32, count)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(src[i*4:]))
	}
	return out, nil
}

// EncodeInt32 appends count little-endian INT32 values to dst.
func EncodeInt32(dst []byte, values []int32) []byte {
	for _, v := range values {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(v))
		dst = append(dst, buf[:]...)
	}
	return dst
}

// DecodeInt64 decodes count little-endian INT64 values.
func DecodeInt64(src []byte, count int) ([]int64, error) {
	if len(src) < count*8 {
		return nil, fmt.Errorf("plain: int64 stream: %w", io.ErrUnexpectedEOF)
	}
	out := make([]int64, count)
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(src[i*8:]))
	}
	return out, nil
}

// EncodeInt64 appends count little-endian INT64 values to dst.
func EncodeInt64(dst []byte, values []int64) []byte {
	for _, v := range values {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		dst = append(dst, buf[:]...)
	}
	return dst
}

// DecodeFloat32 decodes count little-endian FLOAT bit patterns.
func DecodeFloat32(src []byte, count int) ([]uint32, error) {
	if len(src) < count*4 {
		return nil, fmt.Errorf("plain: float stream: %w", io.ErrUnexpectedEOF)
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(src[i*4:])
	}
	return out, nil
}

// EncodeFloat32 appends count little-endian FLOAT bit patterns to dst.
func EncodeFloat32(dst []byte, values []uint32) []byte {
	for _, v := range values {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], v)
		dst = append(dst, buf[:]...)
	}
	return dst
}

// DecodeFloat64 decodes count little-endian DOUBLE bit patterns.
func DecodeFloat64(src []byte, count int) ([]uint64, error) {
	if len(src) < count*8 {
		return nil, fmt.Errorf("plain: double stream: %w", io.ErrUnexpectedEOF)
	}
	out := make([]uint64, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(src[i*8:])
	}
	return out, nil
}

// EncodeFloat64 appends count little-endian DOUBLE bit patterns to dst.
func EncodeFloat64(dst []byte, values []uint64) []byte {
	for _, v := range values {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v)
		dst = append(dst, buf[:]...)
	}
	return dst
}

// DecodeByteArray decodes count BYTE_ARRAY values, each a 4-byte little
// endian length followed by that many raw bytes.
func DecodeByteArray(src []byte, count int) ([][]byte, int, error) {
	out := make([][]byte, count)
	pos := 0
	for i := 0; i < count; i++ {
		if pos+4 > len(src) {
			return nil, 0, fmt.Errorf("plain: byte array %d length: %w", i, io.ErrUnexpectedEOF)
		}
		n := int(binary.LittleEndian.Uint32(src[pos:]))
		pos += 4
		if n < 0 || pos+n > len(src) {
			return nil, 0, fmt.Errorf("plain: byte array %d: %w", i, io.ErrUnexpectedEOF)
		}
		out[i] = src[pos : pos+n]
		pos += n
	}
	return out, pos, nil
}

// EncodeByteArray appends count BYTE_ARRAY values to dst, each framed with
// a 4-byte little endian length prefix.
func EncodeByteArray(dst []byte, values [][]byte) []byte {
	for _, v := range values {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(len(v)))
		dst = append(dst, buf[:]...)
		dst = append(dst, v...)
	}
	return dst
}

// DecodeFixedLenByteArray decodes count values of typeLength bytes each,
// with no framing.
func DecodeFixedLenByteArray(src []byte, count, typeLength int) ([][]byte, int, error) {
	need := count * typeLength
	if len(src) < need {
		return nil, 0, fmt.Errorf("plain: fixed len byte array stream: %w", io.ErrUnexpectedEOF)
	}
	out := make([][]byte, count)
	for i := 0; i < count; i++ {
		out[i] = src[i*typeLength : (i+1)*typeLength]
	}
	return out, need, nil
}

// EncodeFixedLenByteArray appends count values of typeLength bytes each to
// dst, with no framing. Values shorter than typeLength are zero-padded on
// the right; values longer are truncated (callers should never do this).
func EncodeFixedLenByteArray(dst []byte, values [][]byte, typeLength int) []byte {
	for _, v := range values {
		if len(v) >= typeLength {
			dst = append(dst, v[:typeLength]...)
		} else {
			dst = append(dst, v...)
			for i := len(v); i < typeLength; i++ {
				dst = append(dst, 0)
			}
		}
	}
	return dst
}

// DecodeInt96 decodes count 12-byte INT96 values verbatim, with no
// interpretation of their timestamp semantics (out of scope).
func DecodeInt96(src []byte, count int) ([][12]byte, error) {
	if len(src) < count*12 {
		return nil, fmt.Errorf("plain: int96 stream: %w", io.ErrUnexpectedEOF)
	}
	out := make([][12]byte, count)
	for i := range out {
		copy(out[i][:], src[i*12:(i+1)*12])
	}
	return out, nil
}
