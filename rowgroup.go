package parquet

import (
	"github.com/aloksingh/parquet-core/compress"
	"github.com/aloksingh/parquet-core/format"
)

// ByteSource is a random-access, concurrency-safe byte range reader. The
// read call holds no shared cursor across calls, so a single ByteSource
// may back several RowGroupReaders used from separate goroutines (§5).
type ByteSource interface {
	Length() uint64
	ReadAt(offset, length uint64) ([]byte, error)
}

// memoryByteSource is the simplest ByteSource: an in-memory byte slice,
// useful for round-tripping files built entirely in memory (tests, the
// end-to-end scenarios of §8).
type memoryByteSource struct {
	data []byte
}

// NewMemoryByteSource wraps data as a ByteSource.
func NewMemoryByteSource(data []byte) ByteSource {
	return &memoryByteSource{data: data}
}

func (m *memoryByteSource) Length() uint64 { return uint64(len(m.data)) }

func (m *memoryByteSource) ReadAt(offset, length uint64) ([]byte, error) {
	if offset+length > uint64(len(m.data)) {
		return nil, newError(IoError, "read [%d,%d) exceeds length %d", offset, offset+length, len(m.data))
	}
	return m.data[offset : offset+length], nil
}

// RowGroupReader lazily decodes the column chunks of one row group,
// invoking the page framer only for the columns the caller actually
// requests (§4.C13).
type RowGroupReader struct {
	src       ByteSource
	rowGroup  *format.RowGroup
	registry  *compress.Registry
	schema    []ColumnDescriptorRef
}

// ColumnDescriptorRef pairs a physical column's schema-derived shape with
// its position in the row group's column chunk list.
type ColumnDescriptorRef struct {
	PhysicalType       format.Type
	MaxDefinitionLevel uint32
	MaxRepetitionLevel uint32
}

// NewRowGroupReader constructs a reader over one row group's column
// chunks. columnShapes must be ordered the same as rowGroup.Columns.
func NewRowGroupReader(src ByteSource, rowGroup *format.RowGroup, registry *compress.Registry, columnShapes []ColumnDescriptorRef) *RowGroupReader {
	return &RowGroupReader{src: src, rowGroup: rowGroup, registry: registry, schema: columnShapes}
}

// NumRows returns the row group's declared row count.
func (r *RowGroupReader) NumRows() int64 { return r.rowGroup.NumRows }

// ReadPages reads and frames every page of the column chunk at columnIndex.
func (r *RowGroupReader) ReadPages(columnIndex int) ([]Page, error) {
	if columnIndex < 0 || columnIndex >= len(r.rowGroup.Columns) {
		return nil, newError(InvalidFile, "column index %d out of range [0,%d)", columnIndex, len(r.rowGroup.Columns))
	}
	chunk := r.rowGroup.Columns[columnIndex]
	if chunk.MetaData == nil {
		return nil, newError(CorruptedMetadata, "column chunk %d missing metadata", columnIndex)
	}
	meta := chunk.MetaData

	offset := meta.DataPageOffset
	if meta.DictionaryPageOffset != nil {
		offset = *meta.DictionaryPageOffset
	}

	span := meta.TotalCompressedSize
	if span == 0 {
		// Sum of compressed page sizes was not separately tracked; fall
		// back to reading to the end of the byte source, relying on the
		// page framer to stop once it has consumed every page.
		span = int64(r.src.Length()) - offset
	}

	buf, err := r.src.ReadAt(uint64(offset), uint64(span))
	if err != nil {
		return nil, newError(IoError, "column chunk %d: %w", columnIndex, err)
	}

	codec, err := r.registry.Lookup(meta.Codec)
	if err != nil {
		return nil, newError(UnsupportedFeature, "column chunk %d: %w", columnIndex, err)
	}

	shape := r.schema[columnIndex]
	return ReadPages(buf, codec, shape.MaxRepetitionLevel, shape.MaxDefinitionLevel)
}
