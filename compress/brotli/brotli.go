// Package brotli implements the BROTLI Parquet compression codec.
package brotli

import (
	"io"

	"github.com/andybalholm/brotli"

	"github.com/aloksingh/parquet-core/compress"
	"github.com/aloksingh/parquet-core/format"
)

type Codec struct {
	// Quality controls the compression-speed vs compression-density
	// trade-off. Range is 0 to 11.
	Quality int
	// LGWin is the base 2 logarithm of the sliding window size. Range is
	// 10 to 24; 0 selects automatic configuration based on Quality.
	LGWin int

	compressor   compress.Compressor
	decompressor compress.Decompressor
}

func (c *Codec) String() string { return "BROTLI" }

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Brotli
}

func (c *Codec) Compress(dst, src []byte) ([]byte, error) {
	return c.compressor.Encode(dst, src, func(w io.Writer) (compress.Writer, error) {
		opts := brotli.WriterOptions{Quality: c.Quality, LGWin: c.LGWin}
		return writer{brotli.NewWriterOptions(w, opts)}, nil
	})
}

func (c *Codec) Decompress(dst, src []byte, expectedSize int) ([]byte, error) {
	return c.decompressor.Decode(dst, src, func(r io.Reader) (compress.Reader, error) {
		return reader{brotli.NewReader(r)}, nil
	})
}

type reader struct{ *brotli.Reader }

func (r reader) Close() error { return nil }
func (r reader) Reset(rr io.Reader) error {
	return r.Reader.Reset(rr)
}

type writer struct{ *brotli.Writer }

func (w writer) Reset(ww io.Writer) { w.Writer.Reset(ww) }
