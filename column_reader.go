package parquet

import (
	"github.com/aloksingh/parquet-core/encoding/bytestreamsplit"
	"github.com/aloksingh/parquet-core/encoding/delta"
	"github.com/aloksingh/parquet-core/encoding/plain"
	"github.com/aloksingh/parquet-core/encoding/rle"
	"github.com/aloksingh/parquet-core/format"
)

// pageLevels holds one data page's full-length definition and repetition
// level arrays, needed to either interleave nulls directly (flat columns)
// or drive nested reconstruction (§4.C10).
type pageLevels struct {
	def []uint32
	rep []uint32
}

// levelsV1 decodes the rep/def level streams of a Data Page V1. Either
// stream may be absent (maxLevel==0), in which case the implicit
// all-max-level array is synthesised.
func levelsV1(page *DataPageV1, maxRepLevel, maxDefLevel uint32) (pageLevels, error) {
	count := int(page.NumValues)
	var rep, def []uint32

	if maxRepLevel > 0 {
		values, _, err := rle.DecodeLevelsV1(page.RepLevelStream(), levelBitWidth(maxRepLevel), count)
		if err != nil {
			return pageLevels{}, newError(DecodeError, "v1 rep levels: %w", err)
		}
		rep = values
	} else {
		rep = allMaxLevels(0, count)
	}

	if maxDefLevel > 0 && page.DefSpan > 4 {
		values, _, err := rle.DecodeLevelsV1(page.DefLevelStream(), levelBitWidth(maxDefLevel), count)
		if err != nil {
			return pageLevels{}, newError(DecodeError, "v1 def levels: %w", err)
		}
		def = values
	} else {
		def = allMaxLevels(maxDefLevel, count)
	}

	return pageLevels{def: def, rep: rep}, nil
}

// levelsV2 decodes the rep/def level streams of a Data Page V2, which
// carry no 4-byte length prefix (the byte_length comes from the header).
func levelsV2(page *DataPageV2, maxRepLevel, maxDefLevel uint32) (pageLevels, error) {
	count := int(page.NumValues)
	var rep, def []uint32
	var err error

	if maxRepLevel > 0 {
		rep, err = rle.DecodeLevelsV2(page.RepLevels, levelBitWidth(maxRepLevel), count)
		if err != nil {
			return pageLevels{}, newError(DecodeError, "v2 rep levels: %w", err)
		}
	} else {
		rep = allMaxLevels(0, count)
	}

	if maxDefLevel > 0 && len(page.DefLevels) > 0 {
		def, err = rle.DecodeLevelsV2(page.DefLevels, levelBitWidth(maxDefLevel), count)
		if err != nil {
			return pageLevels{}, newError(DecodeError, "v2 def levels: %w", err)
		}
	} else {
		def = allMaxLevels(maxDefLevel, count)
	}

	return pageLevels{def: def, rep: rep}, nil
}

func countNonNull(def []uint32, maxDefLevel uint32) int {
	n := 0
	for _, d := range def {
		if d == maxDefLevel {
			n++
		}
	}
	return n
}

// decodeInt32 decodes every page of an INT32 column chunk.
func decodeInt32(pages []Page, maxDefLevel, maxRepLevel uint32) (values []int32, defLevels, repLevels []uint32, err error) {
	var dict *dictionary

	for _, p := range pages {
		switch page := p.(type) {
		case *DictionaryPage:
			dict, err = newDictionary(format.Int32, 0, page)
			if err != nil {
				return nil, nil, nil, err
			}

		case *DataPageV1:
			lv, err := levelsV1(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeInt32Values(page.Encoding, page.Values(), nonNull, dict)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)

		case *DataPageV2:
			lv, err := levelsV2(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeInt32Values(page.Encoding, page.Values, nonNull, dict)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)
		}
	}

	return values, defLevels, repLevels, nil
}

func decodeInt32Values(encoding format.Encoding, buf []byte, nonNull int, dict *dictionary) ([]int32, error) {
	switch encoding {
	case format.Plain:
		return plain.DecodeInt32(buf, nonNull)

	case format.PlainDictionary, format.RLEDictionary:
		if dict == nil {
			return nil, newError(DecodeError, "int32: dictionary-encoded page without a dictionary page")
		}
		indices, err := rle.DecodeDictionaryIndices(buf, nonNull)
		if err != nil {
			return nil, newError(DecodeError, "int32: %w", err)
		}
		out := make([]int32, nonNull)
		for i, idx := range indices {
			v, err := dict.lookupInt32(idx)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case format.DeltaBinaryPacked:
		values, _, err := delta.DecodeInt32(buf, nonNull)
		if err != nil {
			return nil, newError(DecodeError, "int32: %w", err)
		}
		return values, nil

	default:
		return nil, newError(UnsupportedFeature, "int32: encoding %v", encoding)
	}
}

// decodeInt64 decodes every page of an INT64 column chunk.
func decodeInt64(pages []Page, maxDefLevel, maxRepLevel uint32) (values []int64, defLevels, repLevels []uint32, err error) {
	var dict *dictionary

	for _, p := range pages {
		switch page := p.(type) {
		case *DictionaryPage:
			dict, err = newDictionary(format.Int64, 0, page)
			if err != nil {
				return nil, nil, nil, err
			}

		case *DataPageV1:
			lv, err := levelsV1(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeInt64Values(page.Encoding, page.Values(), nonNull, dict)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)

		case *DataPageV2:
			lv, err := levelsV2(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeInt64Values(page.Encoding, page.Values, nonNull, dict)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)
		}
	}

	return values, defLevels, repLevels, nil
}

func decodeInt64Values(encoding format.Encoding, buf []byte, nonNull int, dict *dictionary) ([]int64, error) {
	switch encoding {
	case format.Plain:
		return plain.DecodeInt64(buf, nonNull)

	case format.PlainDictionary, format.RLEDictionary:
		if dict == nil {
			return nil, newError(DecodeError, "int64: dictionary-encoded page without a dictionary page")
		}
		indices, err := rle.DecodeDictionaryIndices(buf, nonNull)
		if err != nil {
			return nil, newError(DecodeError, "int64: %w", err)
		}
		out := make([]int64, nonNull)
		for i, idx := range indices {
			v, err := dict.lookupInt64(idx)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case format.DeltaBinaryPacked:
		values, _, err := delta.DecodeInt64(buf, nonNull)
		if err != nil {
			return nil, newError(DecodeError, "int64: %w", err)
		}
		return values, nil

	default:
		return nil, newError(UnsupportedFeature, "int64: encoding %v", encoding)
	}
}

// decodeFloat decodes every page of a FLOAT column chunk, returning raw
// IEEE-754 bit patterns (the caller applies math.Float32frombits).
func decodeFloat(pages []Page, maxDefLevel, maxRepLevel uint32) (values []uint32, defLevels, repLevels []uint32, err error) {
	var dict *dictionary

	for _, p := range pages {
		switch page := p.(type) {
		case *DictionaryPage:
			dict, err = newDictionary(format.Float, 0, page)
			if err != nil {
				return nil, nil, nil, err
			}
		case *DataPageV1:
			lv, err := levelsV1(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeFloat32Values(page.Encoding, page.Values(), nonNull, dict)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)
		case *DataPageV2:
			lv, err := levelsV2(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeFloat32Values(page.Encoding, page.Values, nonNull, dict)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)
		}
	}

	return values, defLevels, repLevels, nil
}

func decodeFloat32Values(encoding format.Encoding, buf []byte, nonNull int, dict *dictionary) ([]uint32, error) {
	switch encoding {
	case format.Plain:
		return plain.DecodeFloat32(buf, nonNull)

	case format.PlainDictionary, format.RLEDictionary:
		if dict == nil {
			return nil, newError(DecodeError, "float: dictionary-encoded page without a dictionary page")
		}
		indices, err := rle.DecodeDictionaryIndices(buf, nonNull)
		if err != nil {
			return nil, newError(DecodeError, "float: %w", err)
		}
		out := make([]uint32, nonNull)
		for i, idx := range indices {
			v, err := dict.lookupFloat32(idx)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case format.ByteStreamSplit:
		return bytestreamsplit.DecodeFloat32(buf, nonNull)

	default:
		return nil, newError(UnsupportedFeature, "float: encoding %v", encoding)
	}
}

// decodeDouble decodes every page of a DOUBLE column chunk, returning raw
// IEEE-754 bit patterns.
func decodeDouble(pages []Page, maxDefLevel, maxRepLevel uint32) (values []uint64, defLevels, repLevels []uint32, err error) {
	var dict *dictionary

	for _, p := range pages {
		switch page := p.(type) {
		case *DictionaryPage:
			dict, err = newDictionary(format.Double, 0, page)
			if err != nil {
				return nil, nil, nil, err
			}
		case *DataPageV1:
			lv, err := levelsV1(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeFloat64Values(page.Encoding, page.Values(), nonNull, dict)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)
		case *DataPageV2:
			lv, err := levelsV2(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeFloat64Values(page.Encoding, page.Values, nonNull, dict)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)
		}
	}

	return values, defLevels, repLevels, nil
}

func decodeFloat64Values(encoding format.Encoding, buf []byte, nonNull int, dict *dictionary) ([]uint64, error) {
	switch encoding {
	case format.Plain:
		return plain.DecodeFloat64(buf, nonNull)

	case format.PlainDictionary, format.RLEDictionary:
		if dict == nil {
			return nil, newError(DecodeError, "double: dictionary-encoded page without a dictionary page")
		}
		indices, err := rle.DecodeDictionaryIndices(buf, nonNull)
		if err != nil {
			return nil, newError(DecodeError, "double: %w", err)
		}
		out := make([]uint64, nonNull)
		for i, idx := range indices {
			v, err := dict.lookupFloat64(idx)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case format.ByteStreamSplit:
		return bytestreamsplit.DecodeFloat64(buf, nonNull)

	default:
		return nil, newError(UnsupportedFeature, "double: encoding %v", encoding)
	}
}

// decodeByteArray decodes every page of a BYTE_ARRAY column chunk.
func decodeByteArray(pages []Page, maxDefLevel, maxRepLevel uint32) (values [][]byte, defLevels, repLevels []uint32, err error) {
	var dict *dictionary

	for _, p := range pages {
		switch page := p.(type) {
		case *DictionaryPage:
			dict, err = newDictionary(format.ByteArray, 0, page)
			if err != nil {
				return nil, nil, nil, err
			}
		case *DataPageV1:
			lv, err := levelsV1(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeByteArrayValues(page.Encoding, page.Values(), nonNull, dict)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)
		case *DataPageV2:
			lv, err := levelsV2(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeByteArrayValues(page.Encoding, page.Values, nonNull, dict)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)
		}
	}

	return values, defLevels, repLevels, nil
}

func decodeByteArrayValues(encoding format.Encoding, buf []byte, nonNull int, dict *dictionary) ([][]byte, error) {
	switch encoding {
	case format.Plain:
		values, _, err := plain.DecodeByteArray(buf, nonNull)
		return values, err

	case format.PlainDictionary, format.RLEDictionary:
		if dict == nil {
			return nil, newError(DecodeError, "byte array: dictionary-encoded page without a dictionary page")
		}
		indices, err := rle.DecodeDictionaryIndices(buf, nonNull)
		if err != nil {
			return nil, newError(DecodeError, "byte array: %w", err)
		}
		out := make([][]byte, nonNull)
		for i, idx := range indices {
			v, err := dict.lookupBytes(idx)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case format.DeltaLengthByteArray:
		values, _, err := delta.DecodeLengthByteArray(buf, nonNull)
		if err != nil {
			return nil, newError(DecodeError, "byte array: %w", err)
		}
		return values, nil

	case format.DeltaByteArray:
		values, _, err := delta.DecodeByteArray(buf, nonNull)
		if err != nil {
			return nil, newError(DecodeError, "byte array: %w", err)
		}
		return values, nil

	default:
		return nil, newError(UnsupportedFeature, "byte array: encoding %v", encoding)
	}
}

// decodeString layers UTF-8 string conversion over decodeByteArray.
func decodeString(pages []Page, maxDefLevel, maxRepLevel uint32) (values []string, defLevels, repLevels []uint32, err error) {
	raw, def, rep, err := decodeByteArray(pages, maxDefLevel, maxRepLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	values = make([]string, len(raw))
	for i, v := range raw {
		values[i] = string(v)
	}
	return values, def, rep, nil
}

// decodeBoolean decodes every page of a BOOLEAN column chunk. BOOLEAN has
// no dictionary encoding; PLAIN means LSB-first bit-packed values and RLE
// uses the hybrid codec at bit_width=1, framed differently between V1 and
// V2 (§4.C9).
func decodeBoolean(pages []Page, maxDefLevel, maxRepLevel uint32) (values []bool, defLevels, repLevels []uint32, err error) {
	for _, p := range pages {
		switch page := p.(type) {
		case *DictionaryPage:
			return nil, nil, nil, newError(UnsupportedFeature, "boolean: dictionary-encoded pages are not defined for BOOLEAN")

		case *DataPageV1:
			lv, err := levelsV1(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeBooleanValuesV1(page.Encoding, page.Values(), nonNull)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)

		case *DataPageV2:
			lv, err := levelsV2(page, maxRepLevel, maxDefLevel)
			if err != nil {
				return nil, nil, nil, err
			}
			nonNull := countNonNull(lv.def, maxDefLevel)
			vs, err := decodeBooleanValuesV2(page.Encoding, page.Values, nonNull)
			if err != nil {
				return nil, nil, nil, err
			}
			values = append(values, vs...)
			defLevels = append(defLevels, lv.def...)
			repLevels = append(repLevels, lv.rep...)
		}
	}

	return values, defLevels, repLevels, nil
}

func decodeBooleanValuesV1(encoding format.Encoding, buf []byte, nonNull int) ([]bool, error) {
	switch encoding {
	case format.Plain:
		return rle.DecodeBooleanPlain(buf, nonNull)
	case format.RLE:
		values, _, err := rle.DecodeBooleanRLE(buf, nonNull, false)
		return values, err
	default:
		return nil, newError(UnsupportedFeature, "boolean: encoding %v", encoding)
	}
}

func decodeBooleanValuesV2(encoding format.Encoding, buf []byte, nonNull int) ([]bool, error) {
	switch encoding {
	case format.Plain:
		return rle.DecodeBooleanPlain(buf, nonNull)
	case format.RLE:
		values, _, err := rle.DecodeBooleanRLE(buf, nonNull, true)
		return values, err
	default:
		return nil, newError(UnsupportedFeature, "boolean: encoding %v", encoding)
	}
}
