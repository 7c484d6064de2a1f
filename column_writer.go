package parquet

import (
	"bytes"
	"math"

	"github.com/aloksingh/parquet-core/compress"
	"github.com/aloksingh/parquet-core/encoding/plain"
	"github.com/aloksingh/parquet-core/encoding/rle"
	"github.com/aloksingh/parquet-core/format"
)

// EncodedPage is a fully framed, compressed page ready to be appended to a
// column chunk's byte stream.
type EncodedPage struct {
	Bytes            []byte
	UncompressedSize int64
	CompressedSize   int64
}

// buildLevelStreams RLE-encodes the rep/def level arrays with Data Page V1
// framing, omitting a stream entirely when its column has no such levels
// (maxLevel==0), per §4.C7/§4.C8.
func buildLevelStreams(repLevels, defLevels []uint32, maxRepLevel, maxDefLevel uint32) (repBytes, defBytes []byte) {
	if maxRepLevel > 0 {
		repBytes = rle.EncodeLevelsV1(repLevels, levelBitWidth(maxRepLevel))
	}
	if maxDefLevel > 0 {
		defBytes = rle.EncodeLevelsV1(defLevels, levelBitWidth(maxDefLevel))
	}
	return repBytes, defBytes
}

// buildDataPageV1 frames a Data Page V1: PLAIN values, RLE levels, always
// written uncompressed-then-compressed as a single unit (§4.C7 Writer).
func buildDataPageV1(valuesBytes []byte, numValues int, repBytes, defBytes []byte, codec compress.Codec, stats *format.Statistics) (*EncodedPage, error) {
	body := make([]byte, 0, len(repBytes)+len(defBytes)+len(valuesBytes))
	body = append(body, repBytes...)
	body = append(body, defBytes...)
	body = append(body, valuesBytes...)

	compressed, err := codec.Compress(nil, body)
	if err != nil {
		return nil, newError(DecodeError, "%s: %w", codec.String(), err)
	}

	header := &format.PageHeader{
		Type:                 format.DataPage,
		UncompressedPageSize: int32(len(body)),
		CompressedPageSize:   int32(len(compressed)),
		DataPageHeader: &format.DataPageHeader{
			NumValues:               int32(numValues),
			Encoding:                format.Plain,
			DefinitionLevelEncoding: format.RLE,
			RepetitionLevelEncoding: format.RLE,
			Statistics:              stats,
		},
	}

	page := make([]byte, 0, 32+len(compressed))
	page = append(page, header.Marshal()...)
	page = append(page, compressed...)

	return &EncodedPage{
		Bytes:            page,
		UncompressedSize: int64(len(body)),
		CompressedSize:   int64(len(compressed)),
	}, nil
}

// EncodeInt32Column encodes a flat INT32 column chunk from its (non-null
// values, def_levels, rep_levels) triple.
func EncodeInt32Column(values []int32, defLevels, repLevels []uint32, maxDefLevel, maxRepLevel uint32, codec compress.Codec) (*EncodedPage, *format.Statistics, error) {
	nullCount := int64(len(defLevels) - len(values))
	distinct := make(map[int32]struct{}, len(values))
	var min, max int32
	hasValue := false
	for _, v := range values {
		if !hasValue || v < min {
			min = v
		}
		if !hasValue || v > max {
			max = v
		}
		hasValue = true
		distinct[v] = struct{}{}
	}

	var stats *format.Statistics
	if hasValue || nullCount > 0 {
		stats = &format.Statistics{NullCount: &nullCount}
		distinctCount := int64(len(distinct))
		stats.DistinctCount = &distinctCount
		if hasValue {
			stats.MinValue = plain.EncodeInt32(nil, []int32{min})
			stats.MaxValue = plain.EncodeInt32(nil, []int32{max})
		}
	}

	repBytes, defBytes := buildLevelStreams(repLevels, defLevels, maxRepLevel, maxDefLevel)
	valuesBytes := plain.EncodeInt32(nil, values)
	page, err := buildDataPageV1(valuesBytes, len(defLevels), repBytes, defBytes, codec, stats)
	return page, stats, err
}

// EncodeInt64Column encodes a flat INT64 column chunk.
func EncodeInt64Column(values []int64, defLevels, repLevels []uint32, maxDefLevel, maxRepLevel uint32, codec compress.Codec) (*EncodedPage, *format.Statistics, error) {
	nullCount := int64(len(defLevels) - len(values))
	distinct := make(map[int64]struct{}, len(values))
	var min, max int64
	hasValue := false
	for _, v := range values {
		if !hasValue || v < min {
			min = v
		}
		if !hasValue || v > max {
			max = v
		}
		hasValue = true
		distinct[v] = struct{}{}
	}

	var stats *format.Statistics
	if hasValue || nullCount > 0 {
		stats = &format.Statistics{NullCount: &nullCount}
		distinctCount := int64(len(distinct))
		stats.DistinctCount = &distinctCount
		if hasValue {
			stats.MinValue = plain.EncodeInt64(nil, []int64{min})
			stats.MaxValue = plain.EncodeInt64(nil, []int64{max})
		}
	}

	repBytes, defBytes := buildLevelStreams(repLevels, defLevels, maxRepLevel, maxDefLevel)
	valuesBytes := plain.EncodeInt64(nil, values)
	page, err := buildDataPageV1(valuesBytes, len(defLevels), repBytes, defBytes, codec, stats)
	return page, stats, err
}

// EncodeFloatColumn encodes a flat FLOAT column chunk from raw IEEE-754
// bit patterns.
func EncodeFloatColumn(values []uint32, defLevels, repLevels []uint32, maxDefLevel, maxRepLevel uint32, codec compress.Codec) (*EncodedPage, *format.Statistics, error) {
	nullCount := int64(len(defLevels) - len(values))
	distinct := make(map[uint32]struct{}, len(values))
	var min, max float32
	hasValue := false
	for _, bits := range values {
		v := math.Float32frombits(bits)
		if !hasValue || v < min {
			min = v
		}
		if !hasValue || v > max {
			max = v
		}
		hasValue = true
		distinct[bits] = struct{}{}
	}

	var stats *format.Statistics
	if hasValue || nullCount > 0 {
		stats = &format.Statistics{NullCount: &nullCount}
		distinctCount := int64(len(distinct))
		stats.DistinctCount = &distinctCount
		if hasValue {
			stats.MinValue = plain.EncodeFloat32(nil, []uint32{math.Float32bits(min)})
			stats.MaxValue = plain.EncodeFloat32(nil, []uint32{math.Float32bits(max)})
		}
	}

	repBytes, defBytes := buildLevelStreams(repLevels, defLevels, maxRepLevel, maxDefLevel)
	valuesBytes := plain.EncodeFloat32(nil, values)
	page, err := buildDataPageV1(valuesBytes, len(defLevels), repBytes, defBytes, codec, stats)
	return page, stats, err
}

// EncodeDoubleColumn encodes a flat DOUBLE column chunk from raw IEEE-754
// bit patterns.
func EncodeDoubleColumn(values []uint64, defLevels, repLevels []uint32, maxDefLevel, maxRepLevel uint32, codec compress.Codec) (*EncodedPage, *format.Statistics, error) {
	nullCount := int64(len(defLevels) - len(values))
	distinct := make(map[uint64]struct{}, len(values))
	var min, max float64
	hasValue := false
	for _, bits := range values {
		v := math.Float64frombits(bits)
		if !hasValue || v < min {
			min = v
		}
		if !hasValue || v > max {
			max = v
		}
		hasValue = true
		distinct[bits] = struct{}{}
	}

	var stats *format.Statistics
	if hasValue || nullCount > 0 {
		stats = &format.Statistics{NullCount: &nullCount}
		distinctCount := int64(len(distinct))
		stats.DistinctCount = &distinctCount
		if hasValue {
			stats.MinValue = plain.EncodeFloat64(nil, []uint64{math.Float64bits(min)})
			stats.MaxValue = plain.EncodeFloat64(nil, []uint64{math.Float64bits(max)})
		}
	}

	repBytes, defBytes := buildLevelStreams(repLevels, defLevels, maxRepLevel, maxDefLevel)
	valuesBytes := plain.EncodeFloat64(nil, values)
	page, err := buildDataPageV1(valuesBytes, len(defLevels), repBytes, defBytes, codec, stats)
	return page, stats, err
}

// EncodeByteArrayColumn encodes a flat BYTE_ARRAY column chunk. Min/max
// use unsigned-lexicographic byte comparison, matching Go's bytes.Compare.
func EncodeByteArrayColumn(values [][]byte, defLevels, repLevels []uint32, maxDefLevel, maxRepLevel uint32, codec compress.Codec) (*EncodedPage, *format.Statistics, error) {
	nullCount := int64(len(defLevels) - len(values))
	distinct := make(map[string]struct{}, len(values))
	var min, max []byte
	for _, v := range values {
		if min == nil || bytes.Compare(v, min) < 0 {
			min = v
		}
		if max == nil || bytes.Compare(v, max) > 0 {
			max = v
		}
		distinct[string(v)] = struct{}{}
	}

	var stats *format.Statistics
	if len(values) > 0 || nullCount > 0 {
		stats = &format.Statistics{NullCount: &nullCount}
		distinctCount := int64(len(distinct))
		stats.DistinctCount = &distinctCount
		if len(values) > 0 {
			stats.MinValue = min
			stats.MaxValue = max
		}
	}

	repBytes, defBytes := buildLevelStreams(repLevels, defLevels, maxRepLevel, maxDefLevel)
	valuesBytes := plain.EncodeByteArray(nil, values)
	page, err := buildDataPageV1(valuesBytes, len(defLevels), repBytes, defBytes, codec, stats)
	return page, stats, err
}

// EncodeBooleanColumn encodes a flat BOOLEAN column chunk. BOOLEAN
// statistics carry no distinct_count in this core (only two possible
// values, rarely useful), matching the null_count/min/max fields only.
func EncodeBooleanColumn(values []bool, defLevels, repLevels []uint32, maxDefLevel, maxRepLevel uint32, codec compress.Codec) (*EncodedPage, *format.Statistics, error) {
	nullCount := int64(len(defLevels) - len(values))
	hasTrue, hasFalse := false, false
	for _, v := range values {
		if v {
			hasTrue = true
		} else {
			hasFalse = true
		}
	}

	var stats *format.Statistics
	if len(values) > 0 || nullCount > 0 {
		stats = &format.Statistics{NullCount: &nullCount}
		if len(values) > 0 {
			min, max := hasTrue && !hasFalse, hasTrue
			stats.MinValue = rle.EncodeBooleanPlain([]bool{min})
			stats.MaxValue = rle.EncodeBooleanPlain([]bool{max})
		}
	}

	repBytes, defBytes := buildLevelStreams(repLevels, defLevels, maxRepLevel, maxDefLevel)
	valuesBytes := rle.EncodeBooleanPlain(values)
	page, err := buildDataPageV1(valuesBytes, len(defLevels), repBytes, defBytes, codec, stats)
	return page, stats, err
}

// MapLevels computes the (rep, key_def, value_def) level triple for one
// logical map slot, per the §4.C11 MAP level calculation. entryIsNullValue
// has one element per (possibly null-valued) entry in the map, reporting
// whether that entry's value is null; an empty slice encodes an empty map.
// mapIsNull==true produces the null-map encoding regardless of the other
// arguments.
func MapLevels(mapIsNull bool, entryIsNullValue []bool, keyMaxDefLevel, valueMaxDefLevel uint32) (repLevels, keyDefLevels, valueDefLevels []uint32) {
	if mapIsNull {
		return []uint32{0}, []uint32{0}, []uint32{0}
	}
	if len(entryIsNullValue) == 0 {
		return []uint32{0}, []uint32{1}, []uint32{1}
	}

	repLevels = make([]uint32, len(entryIsNullValue))
	keyDefLevels = make([]uint32, len(entryIsNullValue))
	valueDefLevels = make([]uint32, len(entryIsNullValue))

	for i, isNull := range entryIsNullValue {
		if i > 0 {
			repLevels[i] = 1
		}
		keyDefLevels[i] = keyMaxDefLevel
		if isNull {
			valueDefLevels[i] = valueMaxDefLevel - 1
		} else {
			valueDefLevels[i] = valueMaxDefLevel
		}
	}

	return repLevels, keyDefLevels, valueDefLevels
}
