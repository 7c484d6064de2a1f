package parquet

import (
	"github.com/aloksingh/parquet-core/encoding/plain"
	"github.com/aloksingh/parquet-core/format"
)

// dictionary is a typed array of unique values decoded from a Dictionary
// Page, indexed by the PLAIN_DICTIONARY/RLE_DICTIONARY index streams of
// the data pages that follow it in the same column chunk.
type dictionary struct {
	int32Values   []int32
	int64Values   []int64
	float32Values []uint32
	float64Values []uint64
	byteValues    [][]byte
	booleanValues []bool
}

func newDictionary(physicalType format.Type, typeLength int32, page *DictionaryPage) (*dictionary, error) {
	d := &dictionary{}
	count := int(page.NumValues)

	switch physicalType {
	case format.Boolean:
		values, _, err := plain.DecodeFixedLenByteArray(page.Data, count, 1)
		if err != nil {
			return nil, newError(DecodeError, "dictionary: boolean: %w", err)
		}
		d.booleanValues = make([]bool, count)
		for i, v := range values {
			d.booleanValues[i] = v[0] != 0
		}
	case format.Int32:
		values, err := plain.DecodeInt32(page.Data, count)
		if err != nil {
			return nil, newError(DecodeError, "dictionary: int32: %w", err)
		}
		d.int32Values = values
	case format.Int64:
		values, err := plain.DecodeInt64(page.Data, count)
		if err != nil {
			return nil, newError(DecodeError, "dictionary: int64: %w", err)
		}
		d.int64Values = values
	case format.Float:
		values, err := plain.DecodeFloat32(page.Data, count)
		if err != nil {
			return nil, newError(DecodeError, "dictionary: float: %w", err)
		}
		d.float32Values = values
	case format.Double:
		values, err := plain.DecodeFloat64(page.Data, count)
		if err != nil {
			return nil, newError(DecodeError, "dictionary: double: %w", err)
		}
		d.float64Values = values
	case format.ByteArray:
		values, _, err := plain.DecodeByteArray(page.Data, count)
		if err != nil {
			return nil, newError(DecodeError, "dictionary: byte array: %w", err)
		}
		d.byteValues = values
	case format.FixedLenByteArray:
		values, _, err := plain.DecodeFixedLenByteArray(page.Data, count, int(typeLength))
		if err != nil {
			return nil, newError(DecodeError, "dictionary: fixed len byte array: %w", err)
		}
		d.byteValues = values
	default:
		return nil, newError(UnsupportedFeature, "dictionary: physical type %v", physicalType)
	}

	return d, nil
}

func (d *dictionary) lookupInt32(index uint32) (int32, error) {
	if int(index) >= len(d.int32Values) {
		return 0, newError(DecodeError, "dictionary index %d out of range [0,%d)", index, len(d.int32Values))
	}
	return d.int32Values[index], nil
}

func (d *dictionary) lookupInt64(index uint32) (int64, error) {
	if int(index) >= len(d.int64Values) {
		return 0, newError(DecodeError, "dictionary index %d out of range [0,%d)", index, len(d.int64Values))
	}
	return d.int64Values[index], nil
}

func (d *dictionary) lookupFloat32(index uint32) (uint32, error) {
	if int(index) >= len(d.float32Values) {
		return 0, newError(DecodeError, "dictionary index %d out of range [0,%d)", index, len(d.float32Values))
	}
	return d.float32Values[index], nil
}

func (d *dictionary) lookupFloat64(index uint32) (uint64, error) {
	if int(index) >= len(d.float64Values) {
		return 0, newError(DecodeError, "dictionary index %d out of range [0,%d)", index, len(d.float64Values))
	}
	return d.float64Values[index], nil
}

func (d *dictionary) lookupBytes(index uint32) ([]byte, error) {
	if int(index) >= len(d.byteValues) {
		return nil, newError(DecodeError, "dictionary index %d out of range [0,%d)", index, len(d.byteValues))
	}
	return d.byteValues[index], nil
}
