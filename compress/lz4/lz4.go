// Package lz4 implements the LZ4_RAW Parquet compression codec using the
// raw LZ4 block format (Parquet pages do not carry the LZ4 frame
// container).
package lz4

import (
	"github.com/pierrec/lz4/v4"

	"github.com/aloksingh/parquet-core/format"
)

type Codec struct {
	Level lz4.CompressionLevel
}

func (c *Codec) String() string { return "LZ4_RAW" }

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Lz4Raw
}

func (c *Codec) Compress(dst, src []byte) ([]byte, error) {
	n := len(dst)
	buf := make([]byte, lz4.CompressBlockBound(len(src)))
	var compressor lz4.CompressorHC
	compressor.Level = c.Level
	size, err := compressor.CompressBlock(src, buf)
	if err != nil {
		return dst, err
	}
	if size == 0 && len(src) > 0 {
		// incompressible input: lz4 signals this by writing 0 bytes.
		return append(dst[:n], src...), nil
	}
	return append(dst[:n], buf[:size]...), nil
}

func (c *Codec) Decompress(dst, src []byte, expectedSize int) ([]byte, error) {
	n := len(dst)
	buf := make([]byte, expectedSize)
	size, err := lz4.UncompressBlock(src, buf)
	if err != nil {
		return dst, err
	}
	return append(dst[:n], buf[:size]...), nil
}
