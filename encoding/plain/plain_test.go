package plain

import "testing"

func TestInt32RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 2147483647, -2147483648}
	encoded := EncodeInt32(nil, values)
	decoded, err := DecodeInt32(encoded, len(values))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i := range values {
		if decoded[i] != values[i] {
			t.Fatalf("value %d: got %d want %d", i, decoded[i], values[i])
		}
	}
}

func TestByteArrayRoundTrip(t *testing.T) {
	values := [][]byte{[]byte("a"), []byte(""), []byte("hello world")}
	encoded := EncodeByteArray(nil, values)
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

func TestFixedLenByteArrayRoundTrip(t *testing.T) {
	values := [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}}
	encoded := EncodeFixedLenByteArray(nil, values, 4)
	decoded, n, err := DecodeFixedLenByteArray(encoded, len(values), 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != len(encoded) {
		t.Fatalf("consumed %d, want %d", n, len(encoded))
	}
	for i := range values {
		for j := range values[i] {
			if decoded[i][j] != values[i][j] {
				t.Fatalf("value %d byte %d mismatch", i, j)
			}
		}
	}
}

func TestInt96RoundTrip(t *testing.T) {
	src := make([]byte, 24)
	for i := range src {
		src[i] = byte(i)
	}
	decoded, err := DecodeInt96(src, 2)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded[0][0] != 0 || decoded[1][0] != 12 {
		t.Fatalf("unexpected decode: %v", decoded)
	}
}
