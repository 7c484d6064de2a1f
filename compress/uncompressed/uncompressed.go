// Package uncompressed implements the identity Parquet compression codec.
package uncompressed

import (
	"github.com/aloksingh/parquet-core/format"
)

type Codec struct{}

func (c *Codec) String() string { return "UNCOMPRESSED" }

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Uncompressed
}

func (c *Codec) Compress(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}

func (c *Codec) Decompress(dst, src []byte, expectedSize int) ([]byte, error) {
	return append(dst, src...), nil
}
