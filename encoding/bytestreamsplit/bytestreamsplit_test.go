package bytestreamsplit

import "testing"

func TestFloat32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0x3f800000, 0x7f800000, 0xdeadbeef}
	encoded := EncodeFloat32(values)
	decoded, err := DecodeFloat32(encoded, len(values))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i := range values {
		if decoded[i] != values[i] {
			t.Fatalf("value %d: got %#x want %#x", i, decoded[i], values[i])
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0x3ff0000000000000, 0xdeadbeefcafebabe}
	encoded := EncodeFloat64(values)
	decoded, err := DecodeFloat64(encoded, len(values))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i := range values {
		if decoded[i] != values[i] {
			t.Fatalf("value %d: got %#x want %#x", i, decoded[i], values[i])
		}
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	if _, err := DecodeFloat32([]byte{1, 2, 3}, 2); err == nil {
		t.Fatalf("expected error for short buffer")
	}
}
