// Package format declares the Parquet file-format wire types consumed by
// the codec engine: the subset of the Apache Parquet Thrift IDL needed to
// parse and emit a file footer. The Thrift/metadata wire representation is
// treated as an opaque structured-record codec — this package is its only
// narrow interface to the rest of the module.
package format

import "sort"

// Type is the physical type of a schema leaf, values fixed by the Parquet
// format.
type Type int32

const (
	Boolean           Type = 0
	Int32             Type = 1
	Int64             Type = 2
	Int96             Type = 3
	Float             Type = 4
	Double            Type = 5
	ByteArray         Type = 6
	FixedLenByteArray Type = 7
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// FieldRepetitionType is a schema element's repetition, values fixed by the
// Parquet format.
type FieldRepetitionType int32

const (
	Required FieldRepetitionType = 0
	Optional FieldRepetitionType = 1
	Repeated FieldRepetitionType = 2
)

// Encoding is a value encoding identifier, values fixed by the Parquet
// format.
type Encoding int32

const (
	Plain                  Encoding = 0
	PlainDictionary        Encoding = 2
	RLE                     Encoding = 3
	BitPacked               Encoding = 4 // deprecated, treated as RLE width-constant
	DeltaBinaryPacked       Encoding = 5
	DeltaLengthByteArray    Encoding = 6
	DeltaByteArray          Encoding = 7
	RLEDictionary           Encoding = 8
	ByteStreamSplit         Encoding = 9
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case BitPacked:
		return "BIT_PACKED"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	case ByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "UNKNOWN"
	}
}

// CompressionCodec is a page compression codec identifier, values fixed by
// the Parquet format.
type CompressionCodec int32

const (
	Uncompressed CompressionCodec = 0
	Snappy       CompressionCodec = 1
	Gzip         CompressionCodec = 2
	Lzo          CompressionCodec = 3
	Brotli       CompressionCodec = 4
	Lz4          CompressionCodec = 5
	Zstd         CompressionCodec = 6
	Lz4Raw       CompressionCodec = 7
)

func (c CompressionCodec) String() string {
	switch c {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case Lzo:
		return "LZO"
	case Brotli:
		return "BROTLI"
	case Lz4:
		return "LZ4"
	case Zstd:
		return "ZSTD"
	case Lz4Raw:
		return "LZ4_RAW"
	default:
		return "UNKNOWN"
	}
}

// PageType identifies the kind of page a PageHeader describes.
type PageType int32

const (
	DataPage       PageType = 0
	IndexPage      PageType = 1
	DictionaryPage PageType = 2
	DataPageV2     PageType = 3
)

// SchemaElement is one node of the flat, depth-first schema element list
// carried in FileMetaData.
type SchemaElement struct {
	Type           *Type
	TypeLength     *int32
	RepetitionType *FieldRepetitionType
	Name           string
	NumChildren    *int32
	ConvertedType  *int32
	Scale          *int32
	Precision      *int32
	FieldID        *int32
}

// KeyValue is a single entry of a FileMetaData.KeyValueMetadata list.
type KeyValue struct {
	Key   string
	Value *string
}

// SortKeyValueMetadata sorts the slice of KeyValueMetadata entries by key
// then value, for deterministic footer output.
func SortKeyValueMetadata(kv []KeyValue) {
	sort.Slice(kv, func(i, j int) bool {
		if kv[i].Key != kv[j].Key {
			return kv[i].Key < kv[j].Key
		}
		vi, vj := "", ""
		if kv[i].Value != nil {
			vi = *kv[i].Value
		}
		if kv[j].Value != nil {
			vj = *kv[j].Value
		}
		return vi < vj
	})
}

// Statistics carries chunk or page level min/max/null_count/distinct_count,
// each optional. min/max are encoded identically to PLAIN values of the
// column type (raw bytes, unsigned-lexicographic compare for byte arrays).
type Statistics struct {
	Max          []byte
	Min          []byte
	NullCount    *int64
	DistinctCount *int64
	MaxValue     []byte
	MinValue     []byte
}

// PreferredMin returns the non-deprecated min_value field when present,
// falling back to the deprecated min field.
func (s *Statistics) PreferredMin() []byte {
	if s == nil {
		return nil
	}
	if s.MinValue != nil {
		return s.MinValue
	}
	return s.Min
}

// PreferredMax returns the non-deprecated max_value field when present,
// falling back to the deprecated max field.
func (s *Statistics) PreferredMax() []byte {
	if s == nil {
		return nil
	}
	if s.MaxValue != nil {
		return s.MaxValue
	}
	return s.Max
}

// ColumnMetaData describes the encoding, compression and on-disk layout of
// one column chunk.
type ColumnMetaData struct {
	Type                  Type
	Encodings             []Encoding
	PathInSchema          []string
	Codec                 CompressionCodec
	NumValues             int64
	TotalUncompressedSize int64
	TotalCompressedSize   int64
	KeyValueMetadata      []KeyValue
	DataPageOffset        int64
	IndexPageOffset       *int64
	DictionaryPageOffset  *int64
	Statistics            *Statistics
}

// ColumnChunk is one physical leaf column's slice of a row group.
type ColumnChunk struct {
	FilePath *string
	FileOffset int64
	MetaData *ColumnMetaData
}

// SortingColumn is carried through but never interpreted by this core.
type SortingColumn struct {
	ColumnIdx  int32
	Descending bool
	NullsFirst bool
}

// RowGroup is an ordered list of column chunks sharing a common row count.
type RowGroup struct {
	Columns             []ColumnChunk
	TotalByteSize        int64
	NumRows              int64
	SortingColumns       []SortingColumn
	FileOffset           *int64
	TotalCompressedSize  *int64
	Ordinal              *int16
}

// FileMetaData is the root Thrift structure stored in a Parquet footer.
type FileMetaData struct {
	Version          int32
	Schema           []SchemaElement
	NumRows          int64
	RowGroups        []RowGroup
	KeyValueMetadata []KeyValue
	CreatedBy        *string
}

// DataPageHeader describes a Data Page V1.
type DataPageHeader struct {
	NumValues               int32
	Encoding                Encoding
	DefinitionLevelEncoding Encoding
	RepetitionLevelEncoding Encoding
	Statistics              *Statistics
}

// DataPageHeaderV2 describes a Data Page V2.
type DataPageHeaderV2 struct {
	NumValues                  int32
	NumNulls                   int32
	NumRows                    int32
	Encoding                   Encoding
	DefinitionLevelsByteLength int32
	RepetitionLevelsByteLength int32
	IsCompressed               bool // defaults true when absent
	Statistics                 *Statistics
}

// DictionaryPageHeader describes a Dictionary Page.
type DictionaryPageHeader struct {
	NumValues int32
	Encoding  Encoding
	IsSorted  *bool
}

// PageHeader is the common envelope preceding every page's byte region.
type PageHeader struct {
	Type                 PageType
	UncompressedPageSize int32
	CompressedPageSize   int32
	CRC                  *int32
	DataPageHeader       *DataPageHeader
	DictionaryPageHeader *DictionaryPageHeader
	DataPageHeaderV2     *DataPageHeaderV2
}
