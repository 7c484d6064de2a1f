package parquet

import "github.com/aloksingh/parquet-core/internal/bitutil"

// levelBitWidth returns the number of bits needed to encode any level in
// [0, maxLevel], 0 when maxLevel is 0 (the column carries no level stream
// at all).
func levelBitWidth(maxLevel uint32) uint {
	return bitutil.BitWidth(int(maxLevel))
}

// allMaxLevels synthesises the implicit level array a column with
// maxLevel==0 (or an absent/zero-length encoded stream) is defined to
// have: every slot sits at the maximum level.
func allMaxLevels(maxLevel uint32, count int) []uint32 {
	levels := make([]uint32, count)
	for i := range levels {
		levels[i] = maxLevel
	}
	return levels
}
