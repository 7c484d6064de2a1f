package format

import "testing"

func strp(s string) *string { return &s }
func i32p(v int32) *int32   { return &v }
func i64p(v int64) *int64   { return &v }

func TestFileMetaDataRoundTrip(t *testing.T) {
	typ := Int32
	rep := Required
	m := &FileMetaData{
		Version: 1,
		Schema: []SchemaElement{
			{Name: "root", NumChildren: i32p(1)},
			{Type: &typ, RepetitionType: &rep, Name: "id"},
		},
		NumRows: 3,
		RowGroups: []RowGroup{
			{
				TotalByteSize: 100,
				NumRows:       3,
				Columns: []ColumnChunk{
					{
						FileOffset: 4,
						MetaData: &ColumnMetaData{
							Type:                  Int32,
							Encodings:             []Encoding{Plain, RLE},
							PathInSchema:          []string{"id"},
							Codec:                 Uncompressed,
							NumValues:             3,
							TotalUncompressedSize: 20,
							TotalCompressedSize:   20,
							DataPageOffset:        4,
							Statistics: &Statistics{
								NullCount: i64p(0),
							},
						},
					},
				},
			},
		},
		CreatedBy: strp("test-writer"),
	}

	buf := m.Marshal()
	got, err := UnmarshalFileMetaData(buf)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Version != m.Version || got.NumRows != m.NumRows {
		t.Fatalf("scalar fields mismatch: %+v", got)
	}
	if len(got.Schema) != 2 || got.Schema[1].Name != "id" {
		t.Fatalf("schema mismatch: %+v", got.Schema)
	}
	if got.CreatedBy == nil || *got.CreatedBy != "test-writer" {
		t.Fatalf("created_by mismatch: %v", got.CreatedBy)
	}
	if len(got.RowGroups) != 1 || len(got.RowGroups[0].Columns) != 1 {
		t.Fatalf("row group mismatch: %+v", got.RowGroups)
	}
	cm := got.RowGroups[0].Columns[0].MetaData
	if cm == nil || cm.NumValues != 3 || len(cm.Encodings) != 2 || cm.Encodings[1] != RLE {
		t.Fatalf("column metadata mismatch: %+v", cm)
	}
	if cm.Statistics == nil || cm.Statistics.NullCount == nil || *cm.Statistics.NullCount != 0 {
		t.Fatalf("statistics mismatch: %+v", cm.Statistics)
	}
}

func TestPageHeaderRoundTrip(t *testing.T) {
	h := &PageHeader{
		Type:                 DataPageV2,
		UncompressedPageSize: 64,
		CompressedPageSize:   48,
		DataPageHeaderV2: &DataPageHeaderV2{
			NumValues:                  5,
			NumNulls:                   1,
			NumRows:                    5,
			Encoding:                   Plain,
			DefinitionLevelsByteLength: 2,
			RepetitionLevelsByteLength: 0,
			IsCompressed:               true,
		},
	}
	buf := h.Marshal()
	got, n, err := UnmarshalPageHeader(buf)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d of %d bytes", n, len(buf))
	}
	if got.Type != DataPageV2 || got.DataPageHeaderV2 == nil {
		t.Fatalf("page header mismatch: %+v", got)
	}
	if got.DataPageHeaderV2.NumValues != 5 || !got.DataPageHeaderV2.IsCompressed {
		t.Fatalf("v2 header mismatch: %+v", got.DataPageHeaderV2)
	}
}

func TestDataPageHeaderV2DefaultIsCompressed(t *testing.T) {
	// A V2 header omitting is_compressed must default to true per the
	// Parquet format.
	w := newCompactWriter()
	h := &DataPageHeaderV2{NumValues: 1, NumNulls: 0, NumRows: 1, Encoding: Plain}
	w.structBegin()
	w.writeI32(1, h.NumValues)
	w.writeI32(2, h.NumNulls)
	w.writeI32(3, h.NumRows)
	w.writeI32(4, int32(h.Encoding))
	w.writeI32(5, 0)
	w.writeI32(6, 0)
	w.structEnd()

	r := newCompactReader(w.Bytes())
	got := &DataPageHeaderV2{}
	if err := got.readFrom(r); err != nil {
		t.Fatalf("readFrom: %v", err)
	}
	if !got.IsCompressed {
		t.Fatalf("expected IsCompressed to default true")
	}
}
