package format

import (
	"fmt"

	"github.com/aloksingh/parquet-core/internal/bitutil"
)

// Marshal serializes a FileMetaData to Thrift-Compact bytes, the format
// written immediately before the trailing 4-byte length and "PAR1" magic.
func (m *FileMetaData) Marshal() []byte {
	w := newCompactWriter()
	m.writeTo(w)
	return w.Bytes()
}

// UnmarshalFileMetaData parses Thrift-Compact bytes produced by Marshal.
func UnmarshalFileMetaData(buf []byte) (*FileMetaData, error) {
	r := newCompactReader(buf)
	m := &FileMetaData{}
	if err := m.readFrom(r); err != nil {
		return nil, fmt.Errorf("format: FileMetaData: %w", err)
	}
	return m, nil
}

func (m *FileMetaData) writeTo(w *compactWriter) {
	w.structBegin()
	w.writeI32(1, m.Version)
	w.writeListHeader(2, len(m.Schema), ctStruct)
	for i := range m.Schema {
		m.Schema[i].writeTo(w)
	}
	w.writeI64(3, m.NumRows)
	w.writeListHeader(4, len(m.RowGroups), ctStruct)
	for i := range m.RowGroups {
		m.RowGroups[i].writeTo(w)
	}
	if len(m.KeyValueMetadata) > 0 {
		w.writeListHeader(5, len(m.KeyValueMetadata), ctStruct)
		for i := range m.KeyValueMetadata {
			m.KeyValueMetadata[i].writeTo(w)
		}
	}
	if m.CreatedBy != nil {
		w.writeString(6, *m.CreatedBy)
	}
	w.structEnd()
}

func (m *FileMetaData) readFrom(r *compactReader) error {
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			m.Version = v
		case 2:
			n, _, err := r.listHeader()
			if err != nil {
				return err
			}
			m.Schema = make([]SchemaElement, n)
			for i := 0; i < n; i++ {
				if err := m.Schema[i].readFrom(r); err != nil {
					return err
				}
			}
		case 3:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			m.NumRows = v
		case 4:
			n, _, err := r.listHeader()
			if err != nil {
				return err
			}
			m.RowGroups = make([]RowGroup, n)
			for i := 0; i < n; i++ {
				if err := m.RowGroups[i].readFrom(r); err != nil {
					return err
				}
			}
		case 5:
			n, _, err := r.listHeader()
			if err != nil {
				return err
			}
			m.KeyValueMetadata = make([]KeyValue, n)
			for i := 0; i < n; i++ {
				if err := m.KeyValueMetadata[i].readFrom(r); err != nil {
					return err
				}
			}
		case 6:
			v, err := r.readString()
			if err != nil {
				return err
			}
			m.CreatedBy = &v
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}

func (s *SchemaElement) writeTo(w *compactWriter) {
	w.structBegin()
	if s.Type != nil {
		w.writeI32(1, int32(*s.Type))
	}
	if s.TypeLength != nil {
		w.writeI32(2, *s.TypeLength)
	}
	if s.RepetitionType != nil {
		w.writeI32(3, int32(*s.RepetitionType))
	}
	w.writeString(4, s.Name)
	if s.NumChildren != nil {
		w.writeI32(5, *s.NumChildren)
	}
	if s.ConvertedType != nil {
		w.writeI32(6, *s.ConvertedType)
	}
	if s.Scale != nil {
		w.writeI32(7, *s.Scale)
	}
	if s.Precision != nil {
		w.writeI32(8, *s.Precision)
	}
	if s.FieldID != nil {
		w.writeI32(9, *s.FieldID)
	}
	w.structEnd()
}

func (s *SchemaElement) readFrom(r *compactReader) error {
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			t := Type(v)
			s.Type = &t
		case 2:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			s.TypeLength = &v
		case 3:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			rt := FieldRepetitionType(v)
			s.RepetitionType = &rt
		case 4:
			v, err := r.readString()
			if err != nil {
				return err
			}
			s.Name = v
		case 5:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			s.NumChildren = &v
		case 6:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			s.ConvertedType = &v
		case 7:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			s.Scale = &v
		case 8:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			s.Precision = &v
		case 9:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			s.FieldID = &v
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}

func (kv *KeyValue) writeTo(w *compactWriter) {
	w.structBegin()
	w.writeString(1, kv.Key)
	if kv.Value != nil {
		w.writeString(2, *kv.Value)
	}
	w.structEnd()
}

func (kv *KeyValue) readFrom(r *compactReader) error {
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			v, err := r.readString()
			if err != nil {
				return err
			}
			kv.Key = v
		case 2:
			v, err := r.readString()
			if err != nil {
				return err
			}
			kv.Value = &v
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}

func (g *RowGroup) writeTo(w *compactWriter) {
	w.structBegin()
	w.writeListHeader(1, len(g.Columns), ctStruct)
	for i := range g.Columns {
		g.Columns[i].writeTo(w)
	}
	w.writeI64(2, g.TotalByteSize)
	w.writeI64(3, g.NumRows)
	w.structEnd()
}

func (g *RowGroup) readFrom(r *compactReader) error {
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			n, _, err := r.listHeader()
			if err != nil {
				return err
			}
			g.Columns = make([]ColumnChunk, n)
			for i := 0; i < n; i++ {
				if err := g.Columns[i].readFrom(r); err != nil {
					return err
				}
			}
		case 2:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			g.TotalByteSize = v
		case 3:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			g.NumRows = v
		case 5:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			g.FileOffset = &v
		case 6:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			g.TotalCompressedSize = &v
		case 7:
			v, err := r.readI16()
			if err != nil {
				return err
			}
			g.Ordinal = &v
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}

func (c *ColumnChunk) writeTo(w *compactWriter) {
	w.structBegin()
	w.writeI64(2, c.FileOffset)
	if c.MetaData != nil {
		w.writeStructFieldHeader(3)
		c.MetaData.writeTo(w)
	}
	w.structEnd()
}

func (c *ColumnChunk) readFrom(r *compactReader) error {
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			v, err := r.readString()
			if err != nil {
				return err
			}
			c.FilePath = &v
		case 2:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			c.FileOffset = v
		case 3:
			c.MetaData = &ColumnMetaData{}
			if err := c.MetaData.readFrom(r); err != nil {
				return err
			}
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}

func (c *ColumnMetaData) writeTo(w *compactWriter) {
	w.structBegin()
	w.writeI32(1, int32(c.Type))
	w.writeListHeader(2, len(c.Encodings), ctI32)
	for _, e := range c.Encodings {
		w.buf = bitutil.PutVarint(w.buf, int64(e))
	}
	w.writeListHeader(3, len(c.PathInSchema), ctBinary)
	for _, p := range c.PathInSchema {
		w.buf = bitutil.PutUvarint(w.buf, uint64(len(p)))
		w.buf = append(w.buf, p...)
	}
	w.writeI32(4, int32(c.Codec))
	w.writeI64(5, c.NumValues)
	w.writeI64(6, c.TotalUncompressedSize)
	w.writeI64(7, c.TotalCompressedSize)
	w.writeI64(9, c.DataPageOffset)
	if c.DictionaryPageOffset != nil {
		w.writeI64(11, *c.DictionaryPageOffset)
	}
	if c.Statistics != nil {
		w.writeStructFieldHeader(12)
		c.Statistics.writeTo(w)
	}
	w.structEnd()
}

func (c *ColumnMetaData) readFrom(r *compactReader) error {
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			c.Type = Type(v)
		case 2:
			n, _, err := r.listHeader()
			if err != nil {
				return err
			}
			c.Encodings = make([]Encoding, n)
			for i := 0; i < n; i++ {
				v, err := r.readVarint()
				if err != nil {
					return err
				}
				c.Encodings[i] = Encoding(v)
			}
		case 3:
			n, _, err := r.listHeader()
			if err != nil {
				return err
			}
			c.PathInSchema = make([]string, n)
			for i := 0; i < n; i++ {
				v, err := r.readString()
				if err != nil {
					return err
				}
				c.PathInSchema[i] = v
			}
		case 4:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			c.Codec = CompressionCodec(v)
		case 5:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			c.NumValues = v
		case 6:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			c.TotalUncompressedSize = v
		case 7:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			c.TotalCompressedSize = v
		case 9:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			c.DataPageOffset = v
		case 10:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			c.IndexPageOffset = &v
		case 11:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			c.DictionaryPageOffset = &v
		case 12:
			c.Statistics = &Statistics{}
			if err := c.Statistics.readFrom(r); err != nil {
				return err
			}
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}

func (s *Statistics) writeTo(w *compactWriter) {
	w.structBegin()
	if s.Max != nil {
		w.writeBinary(1, s.Max)
	}
	if s.Min != nil {
		w.writeBinary(2, s.Min)
	}
	if s.NullCount != nil {
		w.writeI64(3, *s.NullCount)
	}
	if s.DistinctCount != nil {
		w.writeI64(4, *s.DistinctCount)
	}
	if s.MaxValue != nil {
		w.writeBinary(5, s.MaxValue)
	}
	if s.MinValue != nil {
		w.writeBinary(6, s.MinValue)
	}
	w.structEnd()
}

func (s *Statistics) readFrom(r *compactReader) error {
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			v, err := r.readBinary()
			if err != nil {
				return err
			}
			s.Max = append([]byte(nil), v...)
		case 2:
			v, err := r.readBinary()
			if err != nil {
				return err
			}
			s.Min = append([]byte(nil), v...)
		case 3:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			s.NullCount = &v
		case 4:
			v, err := r.readI64()
			if err != nil {
				return err
			}
			s.DistinctCount = &v
		case 5:
			v, err := r.readBinary()
			if err != nil {
				return err
			}
			s.MaxValue = append([]byte(nil), v...)
		case 6:
			v, err := r.readBinary()
			if err != nil {
				return err
			}
			s.MinValue = append([]byte(nil), v...)
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}

// PageHeader (de)serialization lives here too: it is read standalone (not
// nested in FileMetaData), directly off the column chunk byte stream.

// Marshal serializes a PageHeader to Thrift-Compact bytes.
func (h *PageHeader) Marshal() []byte {
	w := newCompactWriter()
	h.writeTo(w)
	return w.Bytes()
}

// UnmarshalPageHeader parses a PageHeader from the front of buf, returning
// the header and the number of bytes consumed.
func UnmarshalPageHeader(buf []byte) (*PageHeader, int, error) {
	r := newCompactReader(buf)
	h := &PageHeader{}
	if err := h.readFrom(r); err != nil {
		return nil, 0, fmt.Errorf("format: PageHeader: %w", err)
	}
	return h, r.pos, nil
}

func (h *PageHeader) writeTo(w *compactWriter) {
	w.structBegin()
	w.writeI32(1, int32(h.Type))
	w.writeI32(2, h.UncompressedPageSize)
	w.writeI32(3, h.CompressedPageSize)
	if h.DataPageHeader != nil {
		w.writeStructFieldHeader(5)
		h.DataPageHeader.writeTo(w)
	}
	if h.DictionaryPageHeader != nil {
		w.writeStructFieldHeader(7)
		h.DictionaryPageHeader.writeTo(w)
	}
	if h.DataPageHeaderV2 != nil {
		w.writeStructFieldHeader(8)
		h.DataPageHeaderV2.writeTo(w)
	}
	w.structEnd()
}

func (h *PageHeader) readFrom(r *compactReader) error {
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			h.Type = PageType(v)
		case 2:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			h.UncompressedPageSize = v
		case 3:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			h.CompressedPageSize = v
		case 4:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			h.CRC = &v
		case 5:
			h.DataPageHeader = &DataPageHeader{}
			if err := h.DataPageHeader.readFrom(r); err != nil {
				return err
			}
		case 7:
			h.DictionaryPageHeader = &DictionaryPageHeader{}
			if err := h.DictionaryPageHeader.readFrom(r); err != nil {
				return err
			}
		case 8:
			h.DataPageHeaderV2 = &DataPageHeaderV2{}
			if err := h.DataPageHeaderV2.readFrom(r); err != nil {
				return err
			}
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}

func (d *DataPageHeader) writeTo(w *compactWriter) {
	w.structBegin()
	w.writeI32(1, d.NumValues)
	w.writeI32(2, int32(d.Encoding))
	w.writeI32(3, int32(d.DefinitionLevelEncoding))
	w.writeI32(4, int32(d.RepetitionLevelEncoding))
	w.structEnd()
}

func (d *DataPageHeader) readFrom(r *compactReader) error {
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.NumValues = v
		case 2:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.Encoding = Encoding(v)
		case 3:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.DefinitionLevelEncoding = Encoding(v)
		case 4:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.RepetitionLevelEncoding = Encoding(v)
		case 5:
			d.Statistics = &Statistics{}
			if err := d.Statistics.readFrom(r); err != nil {
				return err
			}
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}

func (d *DataPageHeaderV2) writeTo(w *compactWriter) {
	w.structBegin()
	w.writeI32(1, d.NumValues)
	w.writeI32(2, d.NumNulls)
	w.writeI32(3, d.NumRows)
	w.writeI32(4, int32(d.Encoding))
	w.writeI32(5, d.DefinitionLevelsByteLength)
	w.writeI32(6, d.RepetitionLevelsByteLength)
	w.writeBool(7, d.IsCompressed)
	w.structEnd()
}

func (d *DataPageHeaderV2) readFrom(r *compactReader) error {
	d.IsCompressed = true // default per the Parquet format spec
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.NumValues = v
		case 2:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.NumNulls = v
		case 3:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.NumRows = v
		case 4:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.Encoding = Encoding(v)
		case 5:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.DefinitionLevelsByteLength = v
		case 6:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.RepetitionLevelsByteLength = v
		case 7:
			v, err := r.readBool(ct)
			if err != nil {
				return err
			}
			d.IsCompressed = v
		case 8:
			d.Statistics = &Statistics{}
			if err := d.Statistics.readFrom(r); err != nil {
				return err
			}
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}

func (d *DictionaryPageHeader) writeTo(w *compactWriter) {
	w.structBegin()
	w.writeI32(1, d.NumValues)
	w.writeI32(2, int32(d.Encoding))
	w.structEnd()
}

func (d *DictionaryPageHeader) readFrom(r *compactReader) error {
	r.structBegin()
	defer r.structEnd()
	for {
		id, ct, stop, err := r.fieldHeader()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		switch id {
		case 1:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.NumValues = v
		case 2:
			v, err := r.readI32()
			if err != nil {
				return err
			}
			d.Encoding = Encoding(v)
		case 3:
			v, err := r.readBool(ct)
			if err != nil {
				return err
			}
			d.IsSorted = &v
		default:
			if err := r.skip(ct); err != nil {
				return err
			}
		}
	}
}
