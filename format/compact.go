package format

import (
	"fmt"
	"io"

	"github.com/aloksingh/parquet-core/internal/bitutil"
)

// compact type tags, as defined by the Thrift compact protocol.
const (
	ctBooleanTrue  = 1
	ctBooleanFalse = 2
	ctByte         = 3
	ctI16          = 4
	ctI32          = 5
	ctI64          = 6
	ctDouble       = 7
	ctBinary       = 8
	ctList         = 9
	ctSet          = 10
	ctMap          = 11
	ctStruct       = 12
)

// compactWriter serializes Parquet metadata structures using the Thrift
// compact protocol: field headers use id-delta short forms when possible,
// integers are ZigZag+ULEB128, strings/binary are length-prefixed.
type compactWriter struct {
	buf      []byte
	lastID   []int16
}

func newCompactWriter() *compactWriter {
	return &compactWriter{lastID: []int16{0}}
}

func (w *compactWriter) Bytes() []byte { return w.buf }

func (w *compactWriter) structBegin() {
	w.lastID = append(w.lastID, 0)
}

func (w *compactWriter) structEnd() {
	w.buf = append(w.buf, 0x00) // field stop
	w.lastID = w.lastID[:len(w.lastID)-1]
}

func (w *compactWriter) fieldHeader(id int16, ctype byte) {
	top := len(w.lastID) - 1
	delta := id - w.lastID[top]
	if delta > 0 && delta <= 15 {
		w.buf = append(w.buf, byte(delta)<<4|ctype)
	} else {
		w.buf = append(w.buf, ctype)
		w.buf = bitutil.PutVarint(w.buf, int64(id))
	}
	w.lastID[top] = id
}

func (w *compactWriter) writeBool(id int16, v bool) {
	if v {
		w.fieldHeader(id, ctBooleanTrue)
	} else {
		w.fieldHeader(id, ctBooleanFalse)
	}
}

func (w *compactWriter) writeI16(id int16, v int16) {
	w.fieldHeader(id, ctI16)
	w.buf = bitutil.PutVarint(w.buf, int64(v))
}

func (w *compactWriter) writeI32(id int16, v int32) {
	w.fieldHeader(id, ctI32)
	w.buf = bitutil.PutVarint(w.buf, int64(v))
}

func (w *compactWriter) writeI64(id int16, v int64) {
	w.fieldHeader(id, ctI64)
	w.buf = bitutil.PutVarint(w.buf, v)
}

func (w *compactWriter) writeBinary(id int16, v []byte) {
	w.fieldHeader(id, ctBinary)
	w.buf = bitutil.PutUvarint(w.buf, uint64(len(v)))
	w.buf = append(w.buf, v...)
}

func (w *compactWriter) writeString(id int16, v string) {
	w.writeBinary(id, []byte(v))
}

func (w *compactWriter) listHeader(size int, elemType byte) {
	if size < 15 {
		w.buf = append(w.buf, byte(size)<<4|elemType)
	} else {
		w.buf = append(w.buf, 0xF0|elemType)
		w.buf = bitutil.PutUvarint(w.buf, uint64(size))
	}
}

func (w *compactWriter) writeListHeader(id int16, size int, elemType byte) {
	w.fieldHeader(id, ctList)
	w.listHeader(size, elemType)
}

func (w *compactWriter) writeStructFieldHeader(id int16) {
	w.fieldHeader(id, ctStruct)
}

// compactReader deserializes Thrift compact protocol bytes.
type compactReader struct {
	buf    []byte
	pos    int
	lastID []int16
}

func newCompactReader(buf []byte) *compactReader {
	return &compactReader{buf: buf, lastID: []int16{0}}
}

func (r *compactReader) structBegin() {
	r.lastID = append(r.lastID, 0)
}

func (r *compactReader) structEnd() {
	r.lastID = r.lastID[:len(r.lastID)-1]
}

// fieldHeader returns (fieldID, compactType, stop). When stop is true the
// struct has no more fields.
func (r *compactReader) fieldHeader() (int16, byte, bool, error) {
	if r.pos >= len(r.buf) {
		return 0, 0, false, fmt.Errorf("format: %w", io.ErrUnexpectedEOF)
	}
	b := r.buf[r.pos]
	r.pos++
	if b == 0x00 {
		return 0, 0, true, nil
	}
	ctype := b & 0x0F
	delta := int16(b >> 4)
	top := len(r.lastID) - 1
	var id int16
	if delta == 0 {
		v, n, err := bitutil.Varint(r.buf[r.pos:])
		if err != nil {
			return 0, 0, false, err
		}
		r.pos += n
		id = int16(v)
	} else {
		id = r.lastID[top] + delta
	}
	r.lastID[top] = id
	return id, ctype, false, nil
}

func (r *compactReader) readBool(ctype byte) (bool, error) {
	return ctype == ctBooleanTrue, nil
}

func (r *compactReader) readVarint() (int64, error) {
	v, n, err := bitutil.Varint(r.buf[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

func (r *compactReader) readUvarint() (uint64, error) {
	v, n, err := bitutil.Uvarint(r.buf[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

func (r *compactReader) readI16() (int16, error) {
	v, err := r.readVarint()
	return int16(v), err
}

func (r *compactReader) readI32() (int32, error) {
	v, err := r.readVarint()
	return int32(v), err
}

func (r *compactReader) readI64() (int64, error) {
	return r.readVarint()
}

func (r *compactReader) readBinary() ([]byte, error) {
	n, err := r.readUvarint()
	if err != nil {
		return nil, err
	}
	if r.pos+int(n) > len(r.buf) {
		return nil, fmt.Errorf("format: binary field of %d bytes: %w", n, io.ErrUnexpectedEOF)
	}
	v := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return v, nil
}

func (r *compactReader) readString() (string, error) {
	b, err := r.readBinary()
	return string(b), err
}

// listHeader returns (size, elemType).
func (r *compactReader) listHeader() (int, byte, error) {
	if r.pos >= len(r.buf) {
		return 0, 0, fmt.Errorf("format: %w", io.ErrUnexpectedEOF)
	}
	b := r.buf[r.pos]
	r.pos++
	elemType := b & 0x0F
	size := int(b >> 4)
	if size == 15 {
		n, err := r.readUvarint()
		if err != nil {
			return 0, 0, err
		}
		size = int(n)
	}
	return size, elemType, nil
}

// skip consumes and discards a value of the given compact type, used to
// tolerate unknown fields written by newer producers.
func (r *compactReader) skip(ctype byte) error {
	switch ctype {
	case ctBooleanTrue, ctBooleanFalse:
		return nil
	case ctByte:
		r.pos++
		return nil
	case ctI16, ctI32, ctI64:
		_, err := r.readVarint()
		return err
	case ctDouble:
		if r.pos+8 > len(r.buf) {
			return fmt.Errorf("format: %w", io.ErrUnexpectedEOF)
		}
		r.pos += 8
		return nil
	case ctBinary:
		_, err := r.readBinary()
		return err
	case ctList, ctSet:
		size, elemType, err := r.listHeader()
		if err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			if err := r.skip(elemType); err != nil {
				return err
			}
		}
		return nil
	case ctMap:
		if r.pos >= len(r.buf) {
			return fmt.Errorf("format: %w", io.ErrUnexpectedEOF)
		}
		if r.buf[r.pos] == 0 {
			r.pos++
			return nil
		}
		size, err := r.readUvarint()
		if err != nil {
			return err
		}
		kv := r.buf[r.pos]
		r.pos++
		keyType, valType := kv>>4, kv&0x0F
		for i := uint64(0); i < size; i++ {
			if err := r.skip(keyType); err != nil {
				return err
			}
			if err := r.skip(valType); err != nil {
				return err
			}
		}
		return nil
	case ctStruct:
		r.structBegin()
		for {
			_, ft, stop, err := r.fieldHeader()
			if err != nil {
				return err
			}
			if stop {
				break
			}
			if err := r.skip(ft); err != nil {
				return err
			}
		}
		r.structEnd()
		return nil
	default:
		return fmt.Errorf("format: unknown compact type %d", ctype)
	}
}
