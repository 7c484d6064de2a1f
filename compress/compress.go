// Package compress provides the generic APIs implemented by Parquet
// compression codecs, bridging the page framer's (codec_id, bytes) ↔ bytes
// contract to each algorithm's native Go library.
//
// https://github.com/apache/parquet-format/blob/master/Compression.md
package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/aloksingh/parquet-core/format"
)

// Codec is implemented by the compress sub-packages. Codec instances must
// be safe to use concurrently from multiple goroutines.
type Codec interface {
	fmt.Stringer

	// CompressionCodec returns the code of this compression codec in the
	// Parquet format.
	CompressionCodec() format.CompressionCodec

	// Compress returns the compressed form of src, appended to dst.
	Compress(dst, src []byte) ([]byte, error)

	// Decompress returns the uncompressed form of src, appended to dst.
	// expectedSize is the page header's uncompressed_page_size. The
	// streaming codecs ignore it and SNAPPY uses it to presize the output
	// buffer; LZ4_RAW uses it as the output capacity and fails if the
	// block decompresses to more bytes than that.
	Decompress(dst, src []byte, expectedSize int) ([]byte, error)
}

// Reader is implemented by the streaming decompressors of the codec
// sub-packages.
type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

// Writer is implemented by the streaming compressors of the codec
// sub-packages.
type Writer interface {
	io.WriteCloser
	Reset(io.Writer)
}

// Compressor pools Writer instances to amortize the allocation cost of
// stateful compressors (gzip, zstd, brotli) across calls.
type Compressor struct {
	writers sync.Pool
}

// Encode compresses src into dst using a pooled Writer produced by
// newWriter.
func (c *Compressor) Encode(dst, src []byte, newWriter func(io.Writer) (Writer, error)) ([]byte, error) {
	output := bytes.NewBuffer(dst[:0])

	w, _ := c.writers.Get().(Writer)
	if w != nil {
		w.Reset(output)
	} else {
		var err error
		if w, err = newWriter(output); err != nil {
			return dst, err
		}
	}
	defer c.writers.Put(w)
	defer w.Reset(io.Discard)

	if _, err := w.Write(src); err != nil {
		return output.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return output.Bytes(), err
	}
	return output.Bytes(), nil
}

// Decompressor pools Reader instances to amortize the allocation cost of
// stateful decompressors across calls.
type Decompressor struct {
	readers sync.Pool
}

// Decode decompresses src into dst using a pooled Reader produced by
// newReader.
func (d *Decompressor) Decode(dst, src []byte, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	input := bytes.NewReader(src)

	r, _ := d.readers.Get().(Reader)
	if r != nil {
		if err := r.Reset(input); err != nil {
			return dst, err
		}
	} else {
		var err error
		if r, err = newReader(input); err != nil {
			return dst, err
		}
	}

	defer func() {
		if err := r.Reset(nil); err == nil {
			d.readers.Put(r)
		}
	}()

	output := bytes.NewBuffer(dst[:0])
	_, err := output.ReadFrom(r)
	return output.Bytes(), err
}

// ErrUnsupportedCodec is returned by Registry.Lookup for compression
// codecs that have no implementation registered (e.g. LZO).
var ErrUnsupportedCodec = fmt.Errorf("compress: unsupported codec")
