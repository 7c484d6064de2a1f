package rle

import (
	"math/rand"
	"testing"
)

func TestEncodeDecodeIdentity(t *testing.T) {
	cases := [][]uint32{
		{},
		{0},
		{1, 1, 1, 1, 1},
		{0, 1, 2, 3, 4, 5, 6, 7},
		{1, 1, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 1, 0},
	}

	for _, values := range cases {
		maxVal := 0
		for _, v := range values {
			if int(v) > maxVal {
				maxVal = int(v)
			}
		}
		width := uint(0)
		for m := maxVal; m != 0; m >>= 1 {
			width++
		}

		encoded := Encode(nil, values, width)
		decoded, err := Decode(encoded, width, len(values))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(decoded) != len(values) {
			t.Fatalf("length mismatch: got %d want %d", len(decoded), len(values))
		}
		for i := range values {
			if decoded[i] != values[i] {
				t.Fatalf("value %d: got %d want %d", i, decoded[i], values[i])
			}
		}
	}
}

func TestEncodeDecodeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	width := uint(5)
	maxVal := uint32(1<<width) - 1

	values := make([]uint32, 1000)
	for i := range values {
		values[i] = uint32(rng.Intn(int(maxVal) + 1))
	}

	encoded := Encode(nil, values, width)
	decoded, err := Decode(encoded, width, len(values))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i := range values {
		if decoded[i] != values[i] {
			t.Fatalf("value %d: got %d want %d", i, decoded[i], values[i])
		}
	}
}

func TestBitWidthZero(t *testing.T) {
	decoded, err := Decode(nil, 0, 5)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 5 {
		t.Fatalf("expected 5 zero values, got %d", len(decoded))
	}
	for _, v := range decoded {
		if v != 0 {
			t.Fatalf("expected all-zero values, got %d", v)
		}
	}
}

func TestDictionaryIndicesEmptyRequest(t *testing.T) {
	values, err := DecodeDictionaryIndices(nil, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("expected zero values, got %d", len(values))
	}
}

func TestLevelsV1RoundTrip(t *testing.T) {
	levels := []uint32{0, 1, 1, 0, 1}
	encoded := EncodeLevelsV1(levels, 1)
	decoded, consumed, err := DecodeLevelsV1(encoded, 1, len(levels))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if consumed != len(encoded) {
		t.Fatalf("consumed %d, want %d", consumed, len(encoded))
	}
	for i := range levels {
		if decoded[i] != levels[i] {
			t.Fatalf("level %d: got %d want %d", i, decoded[i], levels[i])
		}
	}
}

func TestBooleanPlainRoundTrip(t *testing.T) {
	values := []bool{true, false, true, true, false, false, true}
	encoded := EncodeBooleanPlain(values)
	decoded, err := DecodeBooleanPlain(encoded, len(values))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i := range values {
		if decoded[i] != values[i] {
			t.Fatalf("value %d: got %v want %v", i, decoded[i], values[i])
		}
	}
}
