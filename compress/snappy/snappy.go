// Package snappy implements the SNAPPY Parquet compression codec.
//
// Parquet pages carry raw Snappy blocks, not the framed/streaming Snappy
// container, so this codec calls the block Encode/Decode functions
// directly rather than going through an io.Reader/io.Writer adapter.
package snappy

import (
	"github.com/klauspost/compress/snappy"

	"github.com/aloksingh/parquet-core/format"
)

type Codec struct{}

func (c *Codec) String() string { return "SNAPPY" }

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Snappy
}

func (c *Codec) Compress(dst, src []byte) ([]byte, error) {
	n := len(dst)
	max := snappy.MaxEncodedLen(len(src))
	if max < 0 {
		max = 0
	}
	buf := make([]byte, max)
	out := snappy.Encode(buf, src)
	return append(dst[:n], out...), nil
}

func (c *Codec) Decompress(dst, src []byte, expectedSize int) ([]byte, error) {
	n := len(dst)
	buf := make([]byte, expectedSize)
	out, err := snappy.Decode(buf, src)
	if err != nil {
		return dst, err
	}
	return append(dst[:n], out...), nil
}
