package rle

import (
	"fmt"
	"io"

	"github.com/aloksingh/parquet-core/internal/bitutil"
)

// EncodeLevelsV1 encodes a Data Page V1 level stream: a 4-byte little
// endian length prefix followed by the hybrid-encoded levels.
func EncodeLevelsV1(levels []uint32, bitWidth uint) []byte {
	body := Encode(nil, levels, bitWidth)
	out := bitutil.PutUint32LE(nil, uint32(len(body)))
	return append(out, body...)
}

// DecodeLevelsV1 reads a Data Page V1 level stream from the front of src,
// returning the decoded levels and the number of bytes consumed (including
// the 4-byte length prefix).
func DecodeLevelsV1(src []byte, bitWidth uint, count int) (levels []uint32, consumed int, err error) {
	n, err := bitutil.Uint32LE(src)
	if err != nil {
		return nil, 0, fmt.Errorf("rle: v1 level stream length: %w", err)
	}
	consumed = 4 + int(n)
	if consumed > len(src) {
		return nil, 0, fmt.Errorf("rle: v1 level stream: %w", io.ErrUnexpectedEOF)
	}
	if bitWidth == 0 {
		return make([]uint32, count), consumed, nil
	}
	levels, err = Decode(src[4:consumed], bitWidth, count)
	if err != nil {
		return nil, 0, fmt.Errorf("rle: v1 level stream: %w", err)
	}
	return levels, consumed, nil
}

// PeekLevelLengthV1 reads the 4-byte length prefix of a Data Page V1
// level stream without consuming it and returns the total span
// (4+length) that the caller should skip to reach the next stream.
func PeekLevelLengthV1(src []byte) (span int, err error) {
	n, err := bitutil.Uint32LE(src)
	if err != nil {
		return 0, fmt.Errorf("rle: peek v1 level length: %w", err)
	}
	return 4 + int(n), nil
}

// DecodeLevelsV2 reads a Data Page V2 level stream: src holds exactly the
// stream's bytes, with no length prefix (the length comes from the page
// header).
func DecodeLevelsV2(src []byte, bitWidth uint, count int) ([]uint32, error) {
	if bitWidth == 0 {
		return make([]uint32, count), nil
	}
	levels, err := Decode(src, bitWidth, count)
	if err != nil {
		return nil, fmt.Errorf("rle: v2 level stream: %w", err)
	}
	return levels, nil
}

// EncodeDictionaryIndices encodes a dictionary-index stream: a 1-byte
// bit_width followed by the hybrid-encoded indices. Used for both Data
// Page V1 and V2 (no 4-byte length prefix in either case).
func EncodeDictionaryIndices(indices []uint32, bitWidth byte) []byte {
	out := []byte{bitWidth}
	return Encode(out, indices, uint(bitWidth))
}

// DecodeDictionaryIndices reads a dictionary-index stream from the front of
// src: a 1-byte bit_width followed by the hybrid-encoded indices.
func DecodeDictionaryIndices(src []byte, count int) ([]uint32, error) {
	if count == 0 {
		// §9: requested_count=0 implies zero reads, zero values emitted,
		// even if the page buffer is empty.
		return nil, nil
	}
	if len(src) == 0 {
		return nil, fmt.Errorf("rle: dictionary index stream: %w", io.ErrUnexpectedEOF)
	}
	bitWidth := uint(src[0])
	values, err := Decode(src[1:], bitWidth, count)
	if err != nil {
		return nil, fmt.Errorf("rle: dictionary index stream: %w", err)
	}
	return values, nil
}

// DecodeBooleanPlain unpacks count LSB-first bit-packed booleans (one bit
// per value), the PLAIN encoding for BOOLEAN.
func DecodeBooleanPlain(src []byte, count int) ([]bool, error) {
	r := bitutil.NewReader(src)
	out := make([]bool, count)
	for i := 0; i < count; i++ {
		v, err := r.GetUint(1)
		if err != nil {
			return nil, fmt.Errorf("rle: boolean plain stream: %w", err)
		}
		out[i] = v != 0
	}
	return out, nil
}

// EncodeBooleanPlain packs values LSB-first, one bit per value.
func EncodeBooleanPlain(values []bool) []byte {
	w := bitutil.NewWriter(nil)
	for _, v := range values {
		u := uint64(0)
		if v {
			u = 1
		}
		w.PutUint(u, 1)
	}
	return w.Bytes()
}

// DecodeBooleanRLE decodes count RLE-encoded booleans at bit_width=1. In
// Data Page V1 the stream carries no 4-byte length prefix (the whole
// values region is the stream); in Data Page V2 it does, per §4.C9.
func DecodeBooleanRLE(src []byte, count int, hasLengthPrefix bool) ([]bool, int, error) {
	body := src
	consumed := len(src)
	if hasLengthPrefix {
		n, err := bitutil.Uint32LE(src)
		if err != nil {
			return nil, 0, fmt.Errorf("rle: boolean rle stream length: %w", err)
		}
		consumed = 4 + int(n)
		if consumed > len(src) {
			return nil, 0, fmt.Errorf("rle: boolean rle stream: %w", io.ErrUnexpectedEOF)
		}
		body = src[4:consumed]
	}
	values, err := Decode(body, 1, count)
	if err != nil {
		return nil, 0, fmt.Errorf("rle: boolean rle stream: %w", err)
	}
	out := make([]bool, len(values))
	for i, v := range values {
		out[i] = v != 0
	}
	return out, consumed, nil
}
