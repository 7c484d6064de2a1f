package compress_test

import (
	"testing"

	"github.com/aloksingh/parquet-core/compress"
	"github.com/aloksingh/parquet-core/compress/brotli"
	"github.com/aloksingh/parquet-core/compress/gzip"
	"github.com/aloksingh/parquet-core/compress/lz4"
	"github.com/aloksingh/parquet-core/compress/snappy"
	"github.com/aloksingh/parquet-core/compress/uncompressed"
	"github.com/aloksingh/parquet-core/compress/zstd"
	"github.com/aloksingh/parquet-core/format"
)

func TestCodecsRoundTrip(t *testing.T) {
	codecs := []compress.Codec{
		&uncompressed.Codec{},
		&gzip.Codec{Level: 6},
		&snappy.Codec{},
		&lz4.Codec{},
		&zstd.Codec{},
		&brotli.Codec{Quality: 5},
	}

	src := []byte("the quick brown fox jumps over the lazy dog, repeated: the quick brown fox jumps over the lazy dog")

	for _, c := range codecs {
		t.Run(c.String(), func(t *testing.T) {
			compressed, err := c.Compress(nil, src)
			if err != nil {
				t.Fatalf("compress: %v", err)
			}
			decompressed, err := c.Decompress(nil, compressed, len(src))
			if err != nil {
				t.Fatalf("decompress: %v", err)
			}
			if string(decompressed) != string(src) {
				t.Fatalf("round trip mismatch: got %q", decompressed)
			}
		})
	}
}

func TestRegistryUnsupportedCodec(t *testing.T) {
	reg := compress.NewRegistry()
	reg.Register(&uncompressed.Codec{})

	if _, err := reg.Lookup(format.Lzo); err == nil {
		t.Fatalf("expected LZO lookup to fail")
	}
	if _, err := reg.Lookup(format.Uncompressed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
