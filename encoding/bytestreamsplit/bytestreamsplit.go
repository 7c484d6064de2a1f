// Package bytestreamsplit implements Parquet's BYTE_STREAM_SPLIT encoding
// for FLOAT and DOUBLE columns: each value's W bytes are transposed into W
// separate byte planes, which tends to compress better than the raw PLAIN
// layout for floating point data.
package bytestreamsplit

import "fmt"

// DecodeFloat32 decodes count FLOAT32 values from a byte-stream-split
// stream of width 4.
func DecodeFloat32(src []byte, count int) ([]uint32, error) {
	planes, err := decode(src, count, 4)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = uint32(planes[i*4]) | uint32(planes[i*4+1])<<8 | uint32(planes[i*4+2])<<16 | uint32(planes[i*4+3])<<24
	}
	return out, nil
}

// DecodeFloat64 decodes count FLOAT64 values from a byte-stream-split
// stream of width 8.
func DecodeFloat64(src []byte, count int) ([]uint64, error) {
	planes, err := decode(src, count, 8)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, count)
	for i := range out {
		var v uint64
		for b := 0; b < 8; b++ {
			v |= uint64(planes[i*8+b]) << (8 * b)
		}
		out[i] = v
	}
	return out, nil
}

// decode un-transposes a byte-stream-split stream of count values each
// width bytes wide: stream[j*count+i] holds byte j of value i. It returns
// the values with their bytes back in little-endian per-value order.
func decode(src []byte, count, width int) ([]byte, error) {
	needed := count * width
	if len(src) < needed {
		return nil, fmt.Errorf("bytestreamsplit: need %d bytes, have %d", needed, len(src))
	}
	out := make([]byte, needed)
	for j := 0; j < width; j++ {
		plane := src[j*count : (j+1)*count]
		for i := 0; i < count; i++ {
			out[i*width+j] = plane[i]
		}
	}
	return out, nil
}

// EncodeFloat32 splits count FLOAT32 values (little-endian bit patterns)
// into 4 byte planes.
func EncodeFloat32(values []uint32) []byte {
	raw := make([]byte, len(values)*4)
	for i, v := range values {
		raw[i*4] = byte(v)
		raw[i*4+1] = byte(v >> 8)
		raw[i*4+2] = byte(v >> 16)
		raw[i*4+3] = byte(v >> 24)
	}
	return encode(raw, len(values), 4)
}

// EncodeFloat64 splits count FLOAT64 values (little-endian bit patterns)
// into 8 byte planes.
func EncodeFloat64(values []uint64) []byte {
	raw := make([]byte, len(values)*8)
	for i, v := range values {
		for b := 0; b < 8; b++ {
			raw[i*8+b] = byte(v >> (8 * b))
		}
	}
	return encode(raw, len(values), 8)
}

func encode(raw []byte, count, width int) []byte {
	out := make([]byte, len(raw))
	for j := 0; j < width; j++ {
		for i := 0; i < count; i++ {
			out[j*count+i] = raw[i*width+j]
		}
	}
	return out
}
