// Package zstd implements the ZSTD Parquet compression codec.
package zstd

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/aloksingh/parquet-core/compress"
	"github.com/aloksingh/parquet-core/format"
)

type Codec struct {
	compressor   compress.Compressor
	decompressor compress.Decompressor
}

func (c *Codec) String() string { return "ZSTD" }

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Zstd
}

func (c *Codec) Compress(dst, src []byte) ([]byte, error) {
	return c.compressor.Encode(dst, src, func(w io.Writer) (compress.Writer, error) {
		z, err := zstd.NewWriter(w,
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderLevel(zstd.SpeedFastest),
			zstd.WithZeroFrames(true),
		)
		if err != nil {
			return nil, err
		}
		return writer{z}, nil
	})
}

func (c *Codec) Decompress(dst, src []byte, expectedSize int) ([]byte, error) {
	return c.decompressor.Decode(dst, src, func(r io.Reader) (compress.Reader, error) {
		z, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return reader{z}, nil
	})
}

type reader struct{ *zstd.Decoder }

func (r reader) Close() error { r.Decoder.Close(); return nil }
func (r reader) Reset(rr io.Reader) error {
	if rr == nil {
		return r.Decoder.Reset(nil)
	}
	return r.Decoder.Reset(rr)
}

type writer struct{ *zstd.Encoder }

func (w writer) Close() error { return w.Encoder.Close() }
func (w writer) Reset(ww io.Writer) {
	if ww == nil {
		ww = io.Discard
	}
	w.Encoder.Reset(ww)
}
