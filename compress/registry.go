package compress

import (
	"fmt"

	"github.com/aloksingh/parquet-core/format"
)

// Registry resolves the compress.Codec implementation for a Parquet
// compression codec identifier. The root package's DefaultRegistry
// registers UNCOMPRESSED, SNAPPY, GZIP, LZ4_RAW, ZSTD and BROTLI. There is
// no codec for LZ4 (the framed variant) or LZO, so Lookup returns
// ErrUnsupportedCodec for them.
//
// Callers register their own Codec implementations from the compress/*
// sub-packages; the registry lives here (rather than importing every
// sub-package, which would make this package depend on all of them
// unconditionally) so that a caller can register only the codecs it needs.
type Registry struct {
	codecs map[format.CompressionCodec]Codec
}

// NewRegistry returns a Registry with no codecs registered.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[format.CompressionCodec]Codec)}
}

// Register adds a codec to the registry, keyed by its CompressionCodec id.
func (reg *Registry) Register(c Codec) {
	reg.codecs[c.CompressionCodec()] = c
}

// Lookup returns the codec registered for id, or ErrUnsupportedCodec.
func (reg *Registry) Lookup(id format.CompressionCodec) (Codec, error) {
	c, ok := reg.codecs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCodec, id)
	}
	return c, nil
}
