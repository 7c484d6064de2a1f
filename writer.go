package parquet

import (
	"github.com/aloksingh/parquet-core/format"
	"github.com/aloksingh/parquet-core/internal/bitutil"
)

// WriterConfig configures a Writer's flush behaviour.
type WriterConfig struct {
	// RowGroupRowCountTrigger is the row count at which the caller should
	// flush the currently buffered rows into a new row group. The Writer
	// itself is agnostic to row buffering (callers assemble column data
	// per §4.C11); this field exists so the threshold travels with the
	// writer's other configuration.
	RowGroupRowCountTrigger int64
}

// ColumnChunkInput is one column chunk's already-encoded page plus the
// column metadata fields the writer cannot derive on its own.
type ColumnChunkInput struct {
	PhysicalType format.Type
	Path         []string
	Encodings    []format.Encoding
	Codec        format.CompressionCodec
	NumValues    int64
	Statistics   *format.Statistics
	Page         *EncodedPage
}

// Writer assembles column chunk bytes and row group metadata into a
// complete Parquet file image in memory (§4.C13 Write-side; file I/O
// itself is left to the caller, any random-access sink is acceptable).
type Writer struct {
	buf              []byte
	schemaElements   []format.SchemaElement
	rowGroups        []format.RowGroup
	keyValueMetadata []format.KeyValue
	createdBy        *string
	config           WriterConfig
}

// NewWriter starts a new file image: writes the leading "PAR1" magic and
// retains schemaElements for the eventual footer.
func NewWriter(schemaElements []format.SchemaElement, config WriterConfig) *Writer {
	w := &Writer{schemaElements: schemaElements, config: config}
	w.buf = append(w.buf, magic...)
	return w
}

// Config returns the writer's configuration.
func (w *Writer) Config() WriterConfig { return w.config }

// SetCreatedBy sets the footer's created_by field.
func (w *Writer) SetCreatedBy(createdBy string) { w.createdBy = &createdBy }

// SetKeyValueMetadata sets the footer's key_value_metadata list.
func (w *Writer) SetKeyValueMetadata(kv []format.KeyValue) { w.keyValueMetadata = kv }

// AppendRowGroup appends each column's encoded page to the file image and
// records a RowGroup entry. Each column chunk's data_page_offset equals
// the cursor position at the moment its first (and, in this core's
// single-data-page write path, only) page is written (§4.C13).
func (w *Writer) AppendRowGroup(numRows int64, columns []ColumnChunkInput) {
	rg := format.RowGroup{NumRows: numRows}

	for _, col := range columns {
		offset := int64(len(w.buf))
		w.buf = append(w.buf, col.Page.Bytes...)

		meta := &format.ColumnMetaData{
			Type:                  col.PhysicalType,
			Encodings:             col.Encodings,
			PathInSchema:          col.Path,
			Codec:                 col.Codec,
			NumValues:             col.NumValues,
			TotalUncompressedSize: col.Page.UncompressedSize,
			TotalCompressedSize:   col.Page.CompressedSize,
			DataPageOffset:        offset,
			Statistics:            col.Statistics,
		}
		rg.Columns = append(rg.Columns, format.ColumnChunk{MetaData: meta})
		rg.TotalByteSize += col.Page.UncompressedSize
	}

	w.rowGroups = append(w.rowGroups, rg)
}

// Close serialises the footer (FileMetaData + 4-byte LE length + "PAR1")
// and returns the complete file image. The Writer must not be reused
// afterwards.
func (w *Writer) Close() []byte {
	var numRows int64
	for _, rg := range w.rowGroups {
		numRows += rg.NumRows
	}

	meta := &format.FileMetaData{
		Version:          1,
		Schema:           w.schemaElements,
		NumRows:          numRows,
		RowGroups:        w.rowGroups,
		KeyValueMetadata: w.keyValueMetadata,
		CreatedBy:        w.createdBy,
	}

	footer := meta.Marshal()
	w.buf = append(w.buf, footer...)
	w.buf = bitutil.PutUint32LE(w.buf, uint32(len(footer)))
	w.buf = append(w.buf, magic...)
	return w.buf
}
