// Package parquet implements the core Parquet column-chunk codec engine:
// page framing, level and value encodings, dictionary handling, nested
// LIST/MAP reconstruction, and row-group/file glue bit-exact with Apache
// Parquet's on-disk format.
package parquet

import (
	"github.com/aloksingh/parquet-core/compress"
	"github.com/aloksingh/parquet-core/compress/brotli"
	"github.com/aloksingh/parquet-core/compress/gzip"
	"github.com/aloksingh/parquet-core/compress/lz4"
	"github.com/aloksingh/parquet-core/compress/snappy"
	"github.com/aloksingh/parquet-core/compress/uncompressed"
	"github.com/aloksingh/parquet-core/compress/zstd"
	"github.com/aloksingh/parquet-core/format"
	"github.com/aloksingh/parquet-core/internal/bitutil"
	"github.com/aloksingh/parquet-core/internal/debug"
	"github.com/aloksingh/parquet-core/schema"
)

const magic = "PAR1"

// DefaultRegistry returns a compress.Registry with every codec this core
// wires pre-registered.
func DefaultRegistry() *compress.Registry {
	r := compress.NewRegistry()
	r.Register(&uncompressed.Codec{})
	r.Register(&gzip.Codec{})
	r.Register(&snappy.Codec{})
	r.Register(&lz4.Codec{})
	r.Register(&zstd.Codec{})
	r.Register(&brotli.Codec{})
	return r
}

// File represents an opened Parquet file: its parsed footer metadata and
// derived schema, lazily exposing RowGroupReaders over the byte source.
type File struct {
	Metadata *format.FileMetaData
	Schema   *schema.Schema

	src      ByteSource
	registry *compress.Registry
}

// OpenFile parses the magic header/footer and Thrift-Compact FileMetaData
// of src. Column chunk bytes are left untouched until a RowGroupReader
// requests them (§4.C13). A nil registry defaults to DefaultRegistry().
func OpenFile(src ByteSource, registry *compress.Registry) (*File, error) {
	size := src.Length()
	if size < 8 {
		return nil, newError(InvalidFile, "file too small to contain a footer (%d bytes)", size)
	}

	header, err := src.ReadAt(0, 4)
	if err != nil {
		return nil, newError(IoError, "reading magic header: %w", err)
	}
	if string(header) != magic {
		return nil, newError(InvalidFile, "invalid magic header %q", header)
	}

	tail, err := src.ReadAt(size-8, 8)
	if err != nil {
		return nil, newError(IoError, "reading magic footer: %w", err)
	}
	if string(tail[4:8]) != magic {
		return nil, newError(InvalidFile, "invalid magic footer %q", tail[4:8])
	}

	footerLen, err := bitutil.Uint32LE(tail[:4])
	if err != nil {
		return nil, newError(CorruptedMetadata, "reading footer length: %w", err)
	}
	if uint64(footerLen)+8 > size {
		return nil, newError(InvalidFile, "footer length %d exceeds file size %d", footerLen, size)
	}

	footerData, err := src.ReadAt(size-8-uint64(footerLen), uint64(footerLen))
	if err != nil {
		return nil, newError(IoError, "reading footer: %w", err)
	}

	meta, err := format.UnmarshalFileMetaData(footerData)
	if err != nil {
		return nil, newError(CorruptedMetadata, "parsing footer metadata: %w", err)
	}
	if len(meta.Schema) == 0 {
		return nil, newError(InvalidFile, "file metadata has no schema")
	}

	sch, err := schema.Build(meta.Schema)
	if err != nil {
		return nil, newError(CorruptedMetadata, "building schema: %w", err)
	}

	if registry == nil {
		registry = DefaultRegistry()
	}

	debug.Format("parquet: opened file with %d row groups, %d columns", len(meta.RowGroups), len(sch.Columns))

	return &File{Metadata: meta, Schema: sch, src: src, registry: registry}, nil
}

// NumRowGroups returns the number of row groups in the file.
func (f *File) NumRowGroups() int { return len(f.Metadata.RowGroups) }

// RowGroup returns a reader over row group i.
func (f *File) RowGroup(i int) (*RowGroupReader, error) {
	if i < 0 || i >= len(f.Metadata.RowGroups) {
		return nil, newError(InvalidFile, "row group %d out of range [0,%d)", i, len(f.Metadata.RowGroups))
	}
	shapes := make([]ColumnDescriptorRef, len(f.Schema.Columns))
	for j, c := range f.Schema.Columns {
		shapes[j] = ColumnDescriptorRef{
			PhysicalType:       c.PhysicalType,
			MaxDefinitionLevel: c.MaxDefinitionLevel,
			MaxRepetitionLevel: c.MaxRepetitionLevel,
		}
	}
	return NewRowGroupReader(f.src, &f.Metadata.RowGroups[i], f.registry, shapes), nil
}
