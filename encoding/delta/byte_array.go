package delta

import "fmt"

// DecodeByteArray decodes a DELTA_BYTE_ARRAY stream: a DELTA_BINARY_PACKED
// array of count prefix lengths, a DELTA_LENGTH_BYTE_ARRAY stream of count
// suffixes, and each value reconstructed as prefix(previous) + suffix.
func DecodeByteArray(src []byte, count int) ([][]byte, int, error) {
	prefixLengths, n, err := DecodeInt32(src, count)
	if err != nil {
		return nil, 0, fmt.Errorf("delta: prefix length stream: %w", err)
	}
	pos := n

	suffixes, n2, err := DecodeLengthByteArray(src[pos:], count)
	if err != nil {
		return nil, 0, fmt.Errorf("delta: suffix stream: %w", err)
	}
	pos += n2

	out := make([][]byte, count)
	var prev []byte
	for i := 0; i < count; i++ {
		pl := int(prefixLengths[i])
		if pl < 0 || pl > len(prev) {
			return nil, 0, fmt.Errorf("delta: value %d: invalid prefix length %d", i, pl)
		}
		v := make([]byte, 0, pl+len(suffixes[i]))
		v = append(v, prev[:pl]...)
		v = append(v, suffixes[i]...)
		out[i] = v
		prev = v
	}
	return out, pos, nil
}

// EncodeByteArray encodes values as shared-prefix deltas against the
// previous value, per DELTA_BYTE_ARRAY.
func EncodeByteArray(values [][]byte) []byte {
	prefixLengths := make([]int32, len(values))
	suffixes := make([][]byte, len(values))

	var prev []byte
	for i, v := range values {
		pl := commonPrefixLen(prev, v)
		prefixLengths[i] = int32(pl)
		suffixes[i] = v[pl:]
		prev = v
	}

	dst := EncodeInt32(prefixLengths)
	dst = append(dst, EncodeLengthByteArray(suffixes)...)
	return dst
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
