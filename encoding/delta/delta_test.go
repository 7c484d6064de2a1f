package delta

import "testing"

func TestBinaryPackedInt32RoundTrip(t *testing.T) {
	values := []int32{7, 8, 8, 9, 1, 100, -50, 0, 0, 0, 42}
	encoded := EncodeInt32(values)
	decoded, n, err := DecodeInt32(encoded, len(values))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != len(encoded) {
		t.Fatalf("consumed %d, want %d", n, len(encoded))
	}
	for i := range values {
		if decoded[i] != values[i] {
			t.Fatalf("value %d: got %d want %d", i, decoded[i], values[i])
		}
	}
}

func TestBinaryPackedInt64LargeRun(t *testing.T) {
	values := make([]int64, 500)
	for i := range values {
		values[i] = int64(i*i - 3*i + 7)
	}
	encoded := EncodeInt64(values)
	decoded, _, err := DecodeInt64(encoded, len(values))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i := range values {
		if decoded[i] != values[i] {
			t.Fatalf("value %d: got %d want %d", i, decoded[i], values[i])
		}
	}
}

func TestBinaryPackedEmpty(t *testing.T) {
	encoded := EncodeInt32(nil)
	decoded, _, err := DecodeInt32(encoded, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected zero values, got %d", len(decoded))
	}
}

func TestLengthByteArrayRoundTrip(t *testing.T) {
	values := [][]byte{[]byte("hello"), []byte(""), []byte("world!"), []byte("x")}
	encoded := EncodeLengthByteArray(values)
	decoded, _, err := DecodeLengthByteArray(encoded, len(values))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i := range values {
		if string(decoded[i]) != string(values[i]) {
			t.Fatalf("value %d: got %q want %q", i, decoded[i], values[i])
		}
	}
}

func TestByteArrayRoundTrip(t *testing.T) {
	values := [][]byte{
		[]byte("apple"),
		[]byte("application"),
		[]byte("apply"),
		[]byte("banana"),
		[]byte(""),
		[]byte("bandana"),
	}
	encoded := EncodeByteArray(values)
	decoded, n, err := DecodeByteArray(encoded, len(values))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != len(encoded) {
		t.Fatalf("consumed %d, want %d", n, len(encoded))
	}
	for i := range values {
		if string(decoded[i]) != string(values[i]) {
			t.Fatalf("value %d: got %q want %q", i, decoded[i], values[i])
		}
	}
}
