// Package delta implements Parquet's DELTA_BINARY_PACKED codec and the
// DELTA_LENGTH_BYTE_ARRAY / DELTA_BYTE_ARRAY codecs layered on top of it.
package delta

import (
	"fmt"
	"io"
	"math"

	"github.com/aloksingh/parquet-core/internal/bitutil"
)

const maxSupportedBlockSize = 65536

// DecodeInt32 decodes count non-null INT32 values from a
// DELTA_BINARY_PACKED stream, returning the decoded values and the number
// of bytes consumed.
func DecodeInt32(src []byte, count int) ([]int32, int, error) {
	values, n, err := decode(src, count)
	if err != nil {
		return nil, 0, err
	}
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out, n, nil
}

// DecodeInt64 decodes count non-null INT64 values from a
// DELTA_BINARY_PACKED stream, returning the decoded values and the number
// of bytes consumed.
func DecodeInt64(src []byte, count int) ([]int64, int, error) {
	return decode(src, count)
}

// decode implements the shared block/miniblock delta decode algorithm used
// by both INT32 and INT64 (INT32 is simply narrowed after decoding as
// int64).
func decode(src []byte, requestedCount int) ([]int64, int, error) {
	blockSize, numMiniBlocks, totalValues, firstValue, headerLen, err := decodeHeader(src)
	if err != nil {
		return nil, 0, err
	}
	pos := headerLen

	if totalValues != requestedCount {
		return nil, 0, fmt.Errorf("delta: header value count %d does not match requested count %d", totalValues, requestedCount)
	}

	out := make([]int64, 0, totalValues)
	if totalValues == 0 {
		return out, pos, nil
	}

	out = append(out, firstValue)
	remaining := totalValues - 1
	last := firstValue
	valuesPerMiniBlock := blockSize / numMiniBlocks

	for remaining > 0 {
		if pos >= len(src) {
			return nil, 0, fmt.Errorf("delta: %d missing values: %w", remaining, io.ErrUnexpectedEOF)
		}

		minDelta, n, err := bitutil.Varint(src[pos:])
		if err != nil {
			return nil, 0, fmt.Errorf("delta: min delta: %w", err)
		}
		pos += n

		if pos+numMiniBlocks > len(src) {
			return nil, 0, fmt.Errorf("delta: bit widths: %w", io.ErrUnexpectedEOF)
		}
		bitWidths := src[pos : pos+numMiniBlocks]
		pos += numMiniBlocks

		for _, bw := range bitWidths {
			if remaining <= 0 {
				break
			}
			n := valuesPerMiniBlock
			if n > remaining {
				n = remaining
			}

			if bw == 0 {
				for k := 0; k < n; k++ {
					last += minDelta
					out = append(out, last)
				}
				remaining -= n
				continue
			}

			byteLen := int(bitutil.ByteCount(uint(valuesPerMiniBlock) * uint(bw)))
			if pos+byteLen > len(src) {
				return nil, 0, fmt.Errorf("delta: miniblock: %w", io.ErrUnexpectedEOF)
			}
			r := bitutil.NewReader(src[pos : pos+byteLen])
			pos += byteLen

			for k := 0; k < n; k++ {
				delta, err := r.GetUint(uint(bw))
				if err != nil {
					return nil, 0, fmt.Errorf("delta: miniblock value: %w", err)
				}
				last += minDelta + int64(delta)
				out = append(out, last)
			}
			remaining -= n
		}
	}

	return out, pos, nil
}

func decodeHeader(src []byte) (blockSize, numMiniBlocks, totalValues int, firstValue int64, consumed int, err error) {
	i := 0

	u, n, err := bitutil.Uvarint(src[i:])
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("delta: block size: %w", err)
	}
	i += n
	blockSize = int(u)

	u, n, err = bitutil.Uvarint(src[i:])
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("delta: miniblocks per block: %w", err)
	}
	i += n
	numMiniBlocks = int(u)

	u, n, err = bitutil.Uvarint(src[i:])
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("delta: total value count: %w", err)
	}
	i += n
	totalValues = int(u)

	v, n, err := bitutil.Varint(src[i:])
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("delta: first value: %w", err)
	}
	i += n
	firstValue = v

	switch {
	case numMiniBlocks <= 0:
		err = fmt.Errorf("delta: invalid number of mini blocks (%d)", numMiniBlocks)
	case blockSize <= 0 || blockSize%128 != 0:
		err = fmt.Errorf("delta: invalid block size, not a multiple of 128 (%d)", blockSize)
	case blockSize > maxSupportedBlockSize:
		err = fmt.Errorf("delta: block size too large (%d)", blockSize)
	case (blockSize/numMiniBlocks)%32 != 0:
		err = fmt.Errorf("delta: invalid mini block size, not a multiple of 32 (%d)", blockSize/numMiniBlocks)
	case totalValues < 0 || totalValues > math.MaxInt32:
		err = fmt.Errorf("delta: invalid total value count (%d)", totalValues)
	}

	return blockSize, numMiniBlocks, totalValues, firstValue, i, err
}

// EncodeInt32 encodes values in blocks of 128 deltas, each split into 4
// miniblocks of 32, the simplest valid DELTA_BINARY_PACKED encoder
// (write-side DELTA is not exercised by the
// supported write path, §4.C11, but is provided for completeness/tests).
func EncodeInt32(values []int32) []byte {
	v64 := make([]int64, len(values))
	for i, v := range values {
		v64[i] = int64(v)
	}
	return encode(v64)
}

// EncodeInt64 encodes values with the block-structured delta algorithm.
func EncodeInt64(values []int64) []byte {
	return encode(values)
}

const (
	encodeBlockSize     = 128
	encodeNumMiniBlocks = 4
)

func encode(values []int64) []byte {
	var dst []byte
	dst = bitutil.PutUvarint(dst, uint64(encodeBlockSize))
	dst = bitutil.PutUvarint(dst, uint64(encodeNumMiniBlocks))
	dst = bitutil.PutUvarint(dst, uint64(len(values)))

	if len(values) == 0 {
		dst = bitutil.PutVarint(dst, 0)
		return dst
	}

	dst = bitutil.PutVarint(dst, values[0])
	valuesPerMiniBlock := encodeBlockSize / encodeNumMiniBlocks

	for blockStart := 1; blockStart < len(values); blockStart += encodeBlockSize {
		blockEnd := blockStart + encodeBlockSize
		if blockEnd > len(values) {
			blockEnd = len(values)
		}
		block := values[blockStart:blockEnd]

		deltas := make([]int64, len(block))
		prev := values[blockStart-1]
		for i, v := range block {
			deltas[i] = v - prev
			prev = v
		}

		minDelta := deltas[0]
		for _, d := range deltas[1:] {
			if d < minDelta {
				minDelta = d
			}
		}
		for i := range deltas {
			deltas[i] -= minDelta
		}

		dst = bitutil.PutVarint(dst, minDelta)

		bitWidths := make([]byte, encodeNumMiniBlocks)
		for mb := 0; mb < encodeNumMiniBlocks; mb++ {
			start := mb * valuesPerMiniBlock
			if start >= len(deltas) {
				bitWidths[mb] = 0
				continue
			}
			end := start + valuesPerMiniBlock
			if end > len(deltas) {
				end = len(deltas)
			}
			max := uint64(0)
			for _, d := range deltas[start:end] {
				if uint64(d) > max {
					max = uint64(d)
				}
			}
			bitWidths[mb] = byte(bitutil.BitWidth(int(max)))
		}
		dst = append(dst, bitWidths...)

		for mb := 0; mb < encodeNumMiniBlocks; mb++ {
			bw := uint(bitWidths[mb])
			if bw == 0 {
				continue
			}
			start := mb * valuesPerMiniBlock
			w := bitutil.NewWriter(nil)
			for k := 0; k < valuesPerMiniBlock; k++ {
				var d int64
				if start+k < len(deltas) {
					d = deltas[start+k]
				}
				w.PutUint(uint64(d), bw)
			}
			dst = append(dst, w.Bytes()...)
		}
	}

	return dst
}
