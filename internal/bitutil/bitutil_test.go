package bitutil

import "testing"

func TestBitWidth(t *testing.T) {
	cases := []struct {
		max   int
		width uint
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{7, 3},
		{8, 4},
		{255, 8},
	}
	for _, c := range cases {
		if got := BitWidth(c.max); got != c.width {
			t.Errorf("BitWidth(%d) = %d, want %d", c.max, got, c.width)
		}
	}
}

func TestZigZag32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, 2147483647, -2147483648} {
		if got := UnZigZag32(ZigZag32(v)); got != v {
			t.Errorf("zigzag32 round trip for %d: got %d", v, got)
		}
	}
}

func TestZigZag64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 9223372036854775807, -9223372036854775808} {
		if got := UnZigZag64(ZigZag64(v)); got != v {
			t.Errorf("zigzag64 round trip for %d: got %d", v, got)
		}
	}
}

func TestBitPackRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 1, 0, 3}
	width := uint(3)

	w := NewWriter(nil)
	for _, v := range values {
		w.PutUint(v, width)
	}

	r := NewReader(w.Bytes())
	for i, want := range values {
		got, err := r.GetUint(width)
		if err != nil {
			t.Fatalf("value %d: %v", i, err)
		}
		if got != want {
			t.Errorf("value %d: got %d, want %d", i, got, want)
		}
	}
}

func TestUvarintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 300, 1 << 40} {
		buf := PutUvarint(nil, v)
		got, n, err := Uvarint(buf)
		if err != nil {
			t.Fatalf("uvarint(%d): %v", v, err)
		}
		if n != len(buf) || got != v {
			t.Errorf("uvarint(%d) round trip = %d (%d bytes)", v, got, n)
		}
	}
}
