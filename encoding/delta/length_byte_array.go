package delta

import "fmt"

// DecodeLengthByteArray decodes a DELTA_LENGTH_BYTE_ARRAY stream: a
// DELTA_BINARY_PACKED array of count lengths followed by the concatenated
// raw bytes of each value.
func DecodeLengthByteArray(src []byte, count int) ([][]byte, int, error) {
	lengths, n, err := DecodeInt32(src, count)
	if err != nil {
		return nil, 0, fmt.Errorf("delta: length stream: %w", err)
	}
	pos := n

	out := make([][]byte, count)
	for i, length := range lengths {
		if length < 0 {
			return nil, 0, fmt.Errorf("delta: negative value length %d", length)
		}
		end := pos + int(length)
		if end > len(src) {
			return nil, 0, fmt.Errorf("delta: value %d truncated", i)
		}
		out[i] = src[pos:end]
		pos = end
	}
	return out, pos, nil
}

// EncodeLengthByteArray encodes values as a packed length stream followed
// by their concatenated bytes.
func EncodeLengthByteArray(values [][]byte) []byte {
	lengths := make([]int32, len(values))
	for i, v := range values {
		lengths[i] = int32(len(v))
	}
	dst := EncodeInt32(lengths)
	for _, v := range values {
		dst = append(dst, v...)
	}
	return dst
}
