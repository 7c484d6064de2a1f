// Package rle implements Parquet's hybrid RLE/bit-packed encoding, used for
// repetition and definition level streams, dictionary-index streams, and
// RLE-encoded boolean values.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#run-length-encoding--bit-packing-hybrid-rle--3
package rle

import (
	"fmt"
	"io"

	"github.com/aloksingh/parquet-core/internal/bitutil"
)

// minRunLength is the writer policy threshold: a repeated run of at least
// this many equal values is emitted as an RLE run; shorter runs accumulate
// into a bit-packed run.
const minRunLength = 3

// Encode appends the hybrid RLE/bit-packed encoding of values (each assumed
// to fit in bitWidth bits) to dst.
func Encode(dst []byte, values []uint32, bitWidth uint) []byte {
	i := 0
	for i < len(values) {
		j := i + 1
		for j < len(values) && values[j] == values[i] {
			j++
		}
		runLen := j - i

		if runLen >= minRunLength {
			dst = bitutil.PutUvarint(dst, uint64(runLen)<<1)
			dst = putValueLE(dst, values[i], bitWidth)
			i = j
			continue
		}

		// Accumulate a bit-packed run: consume values until we hit a run
		// of minRunLength or more identical values, or input is exhausted.
		// A bit-packed run always holds a whole number of 8-value groups and
		// the decoder returns every value in it, so a run that does not end
		// the stream also takes the values that follow up to the next
		// multiple of 8; zero padding only ever fills the last run.
		k := i
		for k < len(values) {
			next := k + 1
			for next < len(values) && values[next] == values[k] {
				next++
			}
			if next-k >= minRunLength {
				break
			}
			k = next
		}
		if rem := (k - i) % 8; rem != 0 {
			k += 8 - rem
			if k > len(values) {
				k = len(values)
			}
		}

		group := values[i:k]
		numGroups := (len(group) + 7) / 8
		padded := numGroups * 8

		dst = bitutil.PutUvarint(dst, uint64(numGroups)<<1|1)
		w := bitutil.NewWriter(nil)
		for _, v := range group {
			w.PutUint(uint64(v), bitWidth)
		}
		for n := len(group); n < padded; n++ {
			w.PutUint(0, bitWidth)
		}
		dst = append(dst, w.Bytes()...)
		i = k
	}
	return dst
}

// Decode reads count values encoded at bitWidth bits from src using the
// hybrid RLE/bit-packed codec.
func Decode(src []byte, bitWidth uint, count int) ([]uint32, error) {
	if bitWidth == 0 {
		values := make([]uint32, count)
		return values, nil
	}

	values := make([]uint32, 0, count)
	pos := 0

	for len(values) < count {
		if pos >= len(src) {
			return nil, fmt.Errorf("rle: decode: %w", io.ErrUnexpectedEOF)
		}
		header, n, err := bitutil.Uvarint(src[pos:])
		if err != nil {
			return nil, fmt.Errorf("rle: decode header: %w", err)
		}
		pos += n

		if header&1 == 0 {
			runLen := int(header >> 1)
			byteCount := int(bitutil.ByteCount(bitWidth))
			if pos+byteCount > len(src) {
				return nil, fmt.Errorf("rle: RLE run of %d values: %w", runLen, io.ErrUnexpectedEOF)
			}
			v, err := getValueLE(src[pos:pos+byteCount], bitWidth)
			if err != nil {
				return nil, err
			}
			pos += byteCount
			for k := 0; k < runLen && len(values) < count; k++ {
				values = append(values, v)
			}
		} else {
			numGroups := int(header >> 1)
			numValues := numGroups * 8
			byteLen := int(bitutil.ByteCount(uint(numValues) * bitWidth))
			if pos+byteLen > len(src) {
				return nil, fmt.Errorf("rle: bit-packed run of %d values: %w", numValues, io.ErrUnexpectedEOF)
			}
			r := bitutil.NewReader(src[pos : pos+byteLen])
			pos += byteLen
			for k := 0; k < numValues; k++ {
				v, err := r.GetUint(bitWidth)
				if err != nil {
					return nil, err
				}
				if len(values) < count {
					values = append(values, uint32(v))
				}
			}
		}
	}

	return values, nil
}

func putValueLE(dst []byte, v uint32, bitWidth uint) []byte {
	n := bitutil.ByteCount(bitWidth)
	for i := uint(0); i < n; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

func getValueLE(src []byte, bitWidth uint) (uint32, error) {
	n := bitutil.ByteCount(bitWidth)
	if uint(len(src)) < n {
		return 0, fmt.Errorf("rle: %w", io.ErrUnexpectedEOF)
	}
	var v uint32
	for i := uint(0); i < n; i++ {
		v |= uint32(src[i]) << (8 * i)
	}
	return v, nil
}
