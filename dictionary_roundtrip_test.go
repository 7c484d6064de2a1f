package parquet

import (
	"reflect"
	"testing"

	"github.com/aloksingh/parquet-core/compress/uncompressed"
	"github.com/aloksingh/parquet-core/encoding/plain"
	"github.com/aloksingh/parquet-core/encoding/rle"
	"github.com/aloksingh/parquet-core/format"
)

// TestDictionaryEncodedColumnRoundTrip hand-assembles a column chunk byte
// stream carrying a Dictionary Page followed by an RLE_DICTIONARY-encoded
// Data Page V1, and verifies ReadPages + decodeInt32 resolve every index
// back to its dictionary value.
func TestDictionaryEncodedColumnRoundTrip(t *testing.T) {
	codec := &uncompressed.Codec{}
	dictValues := []int32{100, 200, 300}
	indices := []uint32{2, 0, 1, 2, 0}

	dictData := plain.EncodeInt32(nil, dictValues)
	dictHeader := &format.PageHeader{
		Type:                 format.DictionaryPage,
		UncompressedPageSize: int32(len(dictData)),
		CompressedPageSize:   int32(len(dictData)),
		DictionaryPageHeader: &format.DictionaryPageHeader{
			NumValues: int32(len(dictValues)),
			Encoding:  format.Plain,
		},
	}

	indexBytes := rle.EncodeDictionaryIndices(indices, 2)
	dataHeader := &format.PageHeader{
		Type:                 format.DataPage,
		UncompressedPageSize: int32(len(indexBytes)),
		CompressedPageSize:   int32(len(indexBytes)),
		DataPageHeader: &format.DataPageHeader{
			NumValues: int32(len(indices)),
			Encoding:  format.RLEDictionary,
		},
	}

	var buf []byte
	buf = append(buf, dictHeader.Marshal()...)
	buf = append(buf, dictData...)
	buf = append(buf, dataHeader.Marshal()...)
	buf = append(buf, indexBytes...)

	pages, err := ReadPages(buf, codec, 0, 0)
	if err != nil {
		t.Fatalf("read pages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}

	values, defLevels, _, err := decodeInt32(pages, 0, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []int32{300, 100, 200, 300, 100}
	if !reflect.DeepEqual(values, want) {
		t.Fatalf("values: got %v want %v", values, want)
	}
	if len(defLevels) != len(indices) {
		t.Fatalf("expected %d implicit def levels, got %d", len(indices), len(defLevels))
	}
}
