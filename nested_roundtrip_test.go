package parquet

import (
	"reflect"
	"testing"

	"github.com/aloksingh/parquet-core/compress/uncompressed"
)

// TestListColumnRoundTrip encodes a LIST<INT32> column chunk (null list,
// empty list, non-empty list with an interior null) and drives it all the
// way through page framing, decode, and ReconstructLists.
func TestListColumnRoundTrip(t *testing.T) {
	const maxDefLevel, maxRepLevel = 3, 1
	codec := &uncompressed.Codec{}

	values := []int32{10, 20}
	defLevels := []uint32{0, 1, 3, 2, 3}
	repLevels := []uint32{0, 0, 0, 1, 1}

	page, _, err := EncodeInt32Column(values, defLevels, repLevels, maxDefLevel, maxRepLevel, codec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	pages, err := ReadPages(page.Bytes, codec, maxRepLevel, maxDefLevel)
	if err != nil {
		t.Fatalf("read pages: %v", err)
	}

	gotValues, gotDef, gotRep, err := decodeInt32(pages, maxDefLevel, maxRepLevel)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(gotValues, values) {
		t.Fatalf("values: got %v want %v", gotValues, values)
	}

	lists, err := ReconstructLists(gotDef, gotRep, maxDefLevel, maxRepLevel)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("expected 3 lists, got %d", len(lists))
	}
	if lists[0] != nil {
		t.Fatalf("list 0 should be null, got %v", lists[0])
	}
	if lists[1] == nil || len(lists[1]) != 0 {
		t.Fatalf("list 1 should be empty non-nil, got %v", lists[1])
	}
	want := []ListElement{{Index: 0}, {Null: true}, {Index: 1}}
	if !reflect.DeepEqual(lists[2], want) {
		t.Fatalf("list 2: got %v want %v", lists[2], want)
	}
}

// TestMapColumnRoundTrip encodes a MAP<BYTE_ARRAY, BYTE_ARRAY> column chunk
// (null map, empty map, two-entry map with one null value) through both the
// key and value leaves and drives both through ReconstructMaps.
func TestMapColumnRoundTrip(t *testing.T) {
	const keyMaxDef, keyMaxRep = 3, 1
	const valueMaxDef, valueMaxRep = 4, 1
	codec := &uncompressed.Codec{}

	keys := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	keyDef := []uint32{0, 1, 3, 3, 3}
	repLevels := []uint32{0, 0, 0, 1, 1}

	values := [][]byte{[]byte("va"), []byte("vc")}
	valueDef := []uint32{0, 1, 4, 3, 4}

	keyPage, _, err := EncodeByteArrayColumn(keys, keyDef, repLevels, keyMaxDef, keyMaxRep, codec)
	if err != nil {
		t.Fatalf("encode keys: %v", err)
	}
	valuePage, _, err := EncodeByteArrayColumn(values, valueDef, repLevels, valueMaxDef, valueMaxRep, codec)
	if err != nil {
		t.Fatalf("encode values: %v", err)
	}

	keyPages, err := ReadPages(keyPage.Bytes, codec, keyMaxRep, keyMaxDef)
	if err != nil {
		t.Fatalf("read key pages: %v", err)
	}
	valuePages, err := ReadPages(valuePage.Bytes, codec, valueMaxRep, valueMaxDef)
	if err != nil {
		t.Fatalf("read value pages: %v", err)
	}

	_, gotKeyDef, gotRep, err := decodeByteArray(keyPages, keyMaxDef, keyMaxRep)
	if err != nil {
		t.Fatalf("decode keys: %v", err)
	}
	_, gotValueDef, _, err := decodeByteArray(valuePages, valueMaxDef, valueMaxRep)
	if err != nil {
		t.Fatalf("decode values: %v", err)
	}

	maps, err := ReconstructMaps(gotKeyDef, gotValueDef, gotRep, keyMaxDef, valueMaxDef)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(maps) != 3 {
		t.Fatalf("expected 3 maps, got %d", len(maps))
	}
	if maps[0] != nil {
		t.Fatalf("map 0 should be null, got %v", maps[0])
	}
	if maps[1] == nil || len(maps[1]) != 0 {
		t.Fatalf("map 1 should be empty non-nil, got %v", maps[1])
	}
	want := []MapEntry{
		{KeyIndex: 0, ValueIndex: 0},
		{KeyIndex: 1, ValueIsNull: true},
		{KeyIndex: 2, ValueIndex: 1},
	}
	if !reflect.DeepEqual(maps[2], want) {
		t.Fatalf("map 2: got %v want %v", maps[2], want)
	}
}
