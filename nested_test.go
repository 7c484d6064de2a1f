package parquet

import "testing"

func TestReconstructListsNullEmptyAndValues(t *testing.T) {
	// Lists: null, empty, [1, null, 2]
	defLevels := []uint32{0, 1, 2, 1, 2}
	repLevels := []uint32{0, 0, 0, 1, 1}
	maxDefLevel := uint32(2)

	lists, err := ReconstructLists(defLevels, repLevels, maxDefLevel, 1)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("expected 3 lists, got %d", len(lists))
	}
	if lists[0] != nil {
		t.Fatalf("expected list 0 to be null, got %v", lists[0])
	}
	if lists[1] == nil || len(lists[1]) != 0 {
		t.Fatalf("expected list 1 to be empty non-nil, got %v", lists[1])
	}
	if len(lists[2]) != 3 {
		t.Fatalf("expected list 2 to have 3 elements, got %d", len(lists[2]))
	}
	if lists[2][0].Null || lists[2][0].Index != 0 {
		t.Fatalf("expected first element non-null index 0, got %+v", lists[2][0])
	}
	if !lists[2][1].Null {
		t.Fatalf("expected second element null, got %+v", lists[2][1])
	}
	if lists[2][2].Null || lists[2][2].Index != 1 {
		t.Fatalf("expected third element non-null index 1, got %+v", lists[2][2])
	}
}

func TestReconstructMapsNullEmptyAndEntries(t *testing.T) {
	keyDef := []uint32{0, 1, 2, 2}
	valueDef := []uint32{0, 1, 3, 2}
	rep := []uint32{0, 0, 0, 1}
	keyMaxDef := uint32(2)
	valueMaxDef := uint32(3)

	maps, err := ReconstructMaps(keyDef, valueDef, rep, keyMaxDef, valueMaxDef)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(maps) != 3 {
		t.Fatalf("expected 3 maps, got %d", len(maps))
	}
	if maps[0] != nil {
		t.Fatalf("expected map 0 null, got %v", maps[0])
	}
	if maps[1] == nil || len(maps[1]) != 0 {
		t.Fatalf("expected map 1 empty non-nil, got %v", maps[1])
	}
	if len(maps[2]) != 2 {
		t.Fatalf("expected map 2 to have 2 entries, got %d", len(maps[2]))
	}
	if maps[2][0].ValueIsNull {
		t.Fatalf("expected first entry value non-null")
	}
	if !maps[2][1].ValueIsNull {
		t.Fatalf("expected second entry value null")
	}
}
