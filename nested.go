package parquet

// ListElement is one reconstructed element of a LIST column: either a
// value at Index into the column reader's non-null value stream, or a
// null placeholder (Null==true, Index meaningless).
type ListElement struct {
	Index int
	Null  bool
}

// ReconstructLists groups a LIST column's (def, rep) level streams into
// one outer slot per rep_level==0 position, per §4.C10. A nil slot slice
// denotes a null list; an empty non-nil slice denotes an empty list.
func ReconstructLists(defLevels, repLevels []uint32, maxDefLevel, maxRepLevel uint32) ([][]ListElement, error) {
	if len(defLevels) != len(repLevels) {
		return nil, newError(LevelShapeError, "list: def/rep level length mismatch (%d vs %d)", len(defLevels), len(repLevels))
	}

	var lists [][]ListElement
	valueIndex := 0

	for i := range defLevels {
		def := defLevels[i]
		rep := repLevels[i]
		contributes := false

		if rep == 0 {
			switch {
			case def == 0:
				lists = append(lists, nil)
				continue
			case def == 1:
				lists = append(lists, []ListElement{})
				continue
			default:
				lists = append(lists, []ListElement{})
				contributes = true
			}
		} else {
			if len(lists) == 0 {
				return nil, newError(LevelShapeError, "list: repetition level %d before any slot opened", rep)
			}
			contributes = true
		}

		if !contributes {
			continue
		}

		cur := len(lists) - 1
		if def == maxDefLevel {
			lists[cur] = append(lists[cur], ListElement{Index: valueIndex})
			valueIndex++
		} else {
			lists[cur] = append(lists[cur], ListElement{Null: true})
		}
	}

	return lists, nil
}

// MapEntry is one reconstructed (key, value) pair of a MAP column.
type MapEntry struct {
	KeyIndex    int
	ValueIndex  int
	ValueIsNull bool
}

// ReconstructMaps merges a MAP column's key and value level streams
// (identical rep_level shapes by construction) into one outer slot per
// rep_level==0 position, preserving encounter order for LinkedHashMap
// semantics (§4.C10). A nil slot slice denotes a null map; an empty
// non-nil slice denotes an empty map. Keys are always non-null (the
// Parquet MAP contract requires "key" to be required), so only
// ValueIsNull is tracked.
func ReconstructMaps(keyDefLevels, valueDefLevels, repLevels []uint32, keyMaxDefLevel, valueMaxDefLevel uint32) ([][]MapEntry, error) {
	if len(keyDefLevels) != len(repLevels) || len(valueDefLevels) != len(repLevels) {
		return nil, newError(LevelShapeError, "map: key/value/rep level length mismatch (%d/%d/%d)", len(keyDefLevels), len(valueDefLevels), len(repLevels))
	}

	var maps [][]MapEntry
	keyIndex := 0
	valueIndex := 0

	for i := range repLevels {
		keyDef := keyDefLevels[i]
		valueDef := valueDefLevels[i]
		rep := repLevels[i]
		contributes := false

		if rep == 0 {
			switch {
			case keyDef == 0:
				maps = append(maps, nil)
				continue
			case keyDef == 1:
				maps = append(maps, []MapEntry{})
				continue
			default:
				maps = append(maps, []MapEntry{})
				contributes = true
			}
		} else {
			if len(maps) == 0 {
				return nil, newError(LevelShapeError, "map: repetition level %d before any slot opened", rep)
			}
			contributes = true
		}

		if !contributes {
			continue
		}

		entry := MapEntry{KeyIndex: keyIndex}
		keyIndex++

		if valueDef >= valueMaxDefLevel {
			entry.ValueIndex = valueIndex
			valueIndex++
		} else {
			entry.ValueIsNull = true
		}

		cur := len(maps) - 1
		maps[cur] = append(maps[cur], entry)
	}

	return maps, nil
}
