package parquet

import (
	"fmt"

	"github.com/aloksingh/parquet-core/compress"
	"github.com/aloksingh/parquet-core/format"
	"github.com/aloksingh/parquet-core/internal/bitutil"
)

// DictionaryPage is a Dictionary Page: PLAIN-encoded unique values that
// subsequent data pages in the same column chunk index into.
type DictionaryPage struct {
	Encoding  format.Encoding
	NumValues int32
	Data      []byte
}

// DataPageV1 is a Data Page V1: one contiguous uncompressed buffer holding,
// in order, an optional repetition-level stream, an optional
// definition-level stream, then the values.
type DataPageV1 struct {
	Encoding   format.Encoding
	NumValues  int32
	Data       []byte
	RepSpan    int // byte span of the rep-level stream (0 if max_rep_level==0); includes its 4-byte length prefix
	DefSpan    int // byte span of the def-level stream (0 if max_def_level==0); includes its 4-byte length prefix
	Statistics *format.Statistics
}

// Values returns the page's values region (after the level streams).
func (p *DataPageV1) Values() []byte {
	return p.Data[p.RepSpan+p.DefSpan:]
}

// RepLevelStream returns the raw (length-prefixed) repetition level stream.
func (p *DataPageV1) RepLevelStream() []byte { return p.Data[:p.RepSpan] }

// DefLevelStream returns the raw (length-prefixed) definition level stream.
func (p *DataPageV1) DefLevelStream() []byte { return p.Data[p.RepSpan : p.RepSpan+p.DefSpan] }

// DataPageV2 is a Data Page V2: level streams are always stored
// uncompressed and separately from the (possibly compressed) values.
type DataPageV2 struct {
	Encoding   format.Encoding
	NumValues  int32
	NumNulls   int32
	NumRows    int32
	RepLevels  []byte
	DefLevels  []byte
	Values     []byte
	Statistics *format.Statistics
}

// Page is one of *DictionaryPage, *DataPageV1, or *DataPageV2.
type Page interface {
	isPage()
}

func (*DictionaryPage) isPage() {}
func (*DataPageV1) isPage()     {}
func (*DataPageV2) isPage()     {}

// ReadPages parses every page in a column chunk's (bounds-checked, still
// compressed) byte span, decompressing each with codec. maxRepLevel and
// maxDefLevel come from the column's physical descriptor and determine
// whether Data Page V1 carries rep/def level streams at all.
func ReadPages(buf []byte, codec compress.Codec, maxRepLevel, maxDefLevel uint32) ([]Page, error) {
	var pages []Page
	pos := 0

	for pos < len(buf) {
		header, n, err := format.UnmarshalPageHeader(buf[pos:])
		if err != nil {
			return nil, newError(CorruptedMetadata, "page header at offset %d: %w", pos, err)
		}
		pos += n

		compressedSize := int(header.CompressedPageSize)
		if pos+compressedSize > len(buf) {
			return nil, newError(CorruptedMetadata, "page body at offset %d: truncated (need %d bytes, have %d)", pos, compressedSize, len(buf)-pos)
		}
		body := buf[pos : pos+compressedSize]
		pos += compressedSize

		switch header.Type {
		case format.DictionaryPage:
			if header.DictionaryPageHeader == nil {
				return nil, newError(CorruptedMetadata, "dictionary page missing header")
			}
			data, err := decompressPage(codec, body, int(header.UncompressedPageSize))
			if err != nil {
				return nil, err
			}
			pages = append(pages, &DictionaryPage{
				Encoding:  header.DictionaryPageHeader.Encoding,
				NumValues: header.DictionaryPageHeader.NumValues,
				Data:      data,
			})

		case format.DataPage:
			if header.DataPageHeader == nil {
				return nil, newError(CorruptedMetadata, "data page v1 missing header")
			}
			data, err := decompressPage(codec, body, int(header.UncompressedPageSize))
			if err != nil {
				return nil, err
			}
			repSpan, defSpan := 0, 0
			if maxRepLevel > 0 {
				span, err := peekLevelSpan(data)
				if err != nil {
					return nil, newError(CorruptedMetadata, "data page v1 rep level stream: %w", err)
				}
				repSpan = span
			}
			if maxDefLevel > 0 {
				span, err := peekLevelSpan(data[repSpan:])
				if err != nil {
					return nil, newError(CorruptedMetadata, "data page v1 def level stream: %w", err)
				}
				defSpan = span
			}
			pages = append(pages, &DataPageV1{
				Encoding:   header.DataPageHeader.Encoding,
				NumValues:  header.DataPageHeader.NumValues,
				Data:       data,
				RepSpan:    repSpan,
				DefSpan:    defSpan,
				Statistics: header.DataPageHeader.Statistics,
			})

		case format.DataPageV2:
			if header.DataPageHeaderV2 == nil {
				return nil, newError(CorruptedMetadata, "data page v2 missing header")
			}
			h := header.DataPageHeaderV2
			repLen := int(h.RepetitionLevelsByteLength)
			defLen := int(h.DefinitionLevelsByteLength)
			if repLen+defLen > len(body) {
				return nil, newError(CorruptedMetadata, "data page v2: level streams exceed page body")
			}
			repLevels := body[:repLen]
			defLevels := body[repLen : repLen+defLen]
			rest := body[repLen+defLen:]

			var values []byte
			if h.IsCompressed {
				values, err = decompressPage(codec, rest, int(header.UncompressedPageSize)-repLen-defLen)
				if err != nil {
					return nil, err
				}
			} else {
				values = rest
			}

			pages = append(pages, &DataPageV2{
				Encoding:   h.Encoding,
				NumValues:  h.NumValues,
				NumNulls:   h.NumNulls,
				NumRows:    h.NumRows,
				RepLevels:  repLevels,
				DefLevels:  defLevels,
				Values:     values,
				Statistics: h.Statistics,
			})

		default:
			return nil, newError(UnsupportedFeature, "page type %v", header.Type)
		}
	}

	return pages, nil
}

func decompressPage(codec compress.Codec, src []byte, expectedSize int) ([]byte, error) {
	out, err := codec.Decompress(nil, src, expectedSize)
	if err != nil {
		return nil, newError(DecodeError, "%s: %w", codec.String(), err)
	}
	return out, nil
}

// peekLevelSpan returns the total byte span (4-byte length prefix plus
// body) of a Data Page V1 level stream at the front of buf, without
// decoding it.
func peekLevelSpan(buf []byte) (int, error) {
	n, err := bitutil.Uint32LE(buf)
	if err != nil {
		return 0, err
	}
	span := 4 + int(n)
	if span > len(buf) {
		return 0, fmt.Errorf("level stream length %d exceeds remaining %d bytes", n, len(buf)-4)
	}
	return span, nil
}
