package parquet

import (
	"testing"

	"github.com/aloksingh/parquet-core/compress/uncompressed"
	"github.com/aloksingh/parquet-core/format"
)

func i32Ptr(v int32) *int32                                     { return &v }
func repType(v format.FieldRepetitionType) *format.FieldRepetitionType { return &v }
func typePtr(v format.Type) *format.Type                         { return &v }

func flatSchema() []format.SchemaElement {
	return []format.SchemaElement{
		{Name: "root", NumChildren: i32Ptr(2)},
		{Name: "id", Type: typePtr(format.Int32), RepetitionType: repType(format.Required)},
		{Name: "name", Type: typePtr(format.ByteArray), RepetitionType: repType(format.Optional)},
	}
}

func TestWriteReadRoundTripFlatSchema(t *testing.T) {
	codec := &uncompressed.Codec{}

	ids := []int32{1, 2, 3}
	idDef := []uint32{0, 0, 0}
	idRep := []uint32{0, 0, 0}
	idPage, idStats, err := EncodeInt32Column(ids, idDef, idRep, 0, 0, codec)
	if err != nil {
		t.Fatalf("encode id column: %v", err)
	}

	names := [][]byte{[]byte("alice"), []byte("bob")}
	nameDef := []uint32{1, 0, 1} // alice, null, bob
	nameRep := []uint32{0, 0, 0}
	namePage, nameStats, err := EncodeByteArrayColumn(names, nameDef, nameRep, 1, 0, codec)
	if err != nil {
		t.Fatalf("encode name column: %v", err)
	}

	w := NewWriter(flatSchema(), WriterConfig{RowGroupRowCountTrigger: 1000})
	w.SetCreatedBy("parquet-core test suite")
	w.AppendRowGroup(3, []ColumnChunkInput{
		{
			PhysicalType: format.Int32,
			Path:         []string{"id"},
			Encodings:    []format.Encoding{format.RLE, format.Plain},
			Codec:        format.Uncompressed,
			NumValues:    3,
			Statistics:   idStats,
			Page:         idPage,
		},
		{
			PhysicalType: format.ByteArray,
			Path:         []string{"name"},
			Encodings:    []format.Encoding{format.RLE, format.Plain},
			Codec:        format.Uncompressed,
			NumValues:    3,
			Statistics:   nameStats,
			Page:         namePage,
		},
	})
	fileBytes := w.Close()

	if string(fileBytes[:4]) != "PAR1" {
		t.Fatalf("expected leading magic, got %q", fileBytes[:4])
	}
	if string(fileBytes[len(fileBytes)-4:]) != "PAR1" {
		t.Fatalf("expected trailing magic, got %q", fileBytes[len(fileBytes)-4:])
	}

	src := NewMemoryByteSource(fileBytes)
	f, err := OpenFile(src, nil)
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	if f.NumRowGroups() != 1 {
		t.Fatalf("expected 1 row group, got %d", f.NumRowGroups())
	}
	if f.Metadata.NumRows != 3 {
		t.Fatalf("expected 3 rows, got %d", f.Metadata.NumRows)
	}
	if f.Metadata.CreatedBy == nil || *f.Metadata.CreatedBy != "parquet-core test suite" {
		t.Fatalf("created_by round trip failed: %v", f.Metadata.CreatedBy)
	}

	rg, err := f.RowGroup(0)
	if err != nil {
		t.Fatalf("row group: %v", err)
	}

	idPages, err := rg.ReadPages(0)
	if err != nil {
		t.Fatalf("read id pages: %v", err)
	}
	decodedIDs, _, _, err := decodeInt32(idPages, 0, 0)
	if err != nil {
		t.Fatalf("decode id column: %v", err)
	}
	for i := range ids {
		if decodedIDs[i] != ids[i] {
			t.Fatalf("id %d: got %d want %d", i, decodedIDs[i], ids[i])
		}
	}

	namePages, err := rg.ReadPages(1)
	if err != nil {
		t.Fatalf("read name pages: %v", err)
	}
	decodedNames, decodedDef, _, err := decodeByteArray(namePages, 1, 0)
	if err != nil {
		t.Fatalf("decode name column: %v", err)
	}
	if len(decodedDef) != 3 {
		t.Fatalf("expected 3 def levels, got %d", len(decodedDef))
	}
	if decodedDef[1] != 0 {
		t.Fatalf("expected row 1 to be null, got def level %d", decodedDef[1])
	}
	if string(decodedNames[0]) != "alice" || string(decodedNames[1]) != "bob" {
		t.Fatalf("unexpected decoded names: %v", decodedNames)
	}
}
