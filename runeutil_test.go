package markov

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDecodeRuneASCII(t *testing.T) {
	r, n, ok := decodeRune([]byte("A"))
	if !ok || r != 'A' || n != 1 {
		t.Fatalf("got %q %d %v", r, n, ok)
	}
}

func TestDecodeRuneZero(t *testing.T) {
	r, n, ok := decodeRune([]byte{0x00})
	if !ok || r != 0 || n != 1 {
		t.Fatalf("got %q %d %v", r, n, ok)
	}
}

func TestDecodeRuneOverlong(t *testing.T) {
	// 0xC0 0x80 is the overlong 2-byte encoding of NUL.
	if _, _, ok := decodeRune([]byte{0xC0, 0x80}); ok {
		t.Fatalf("accepted overlong 2-byte encoding")
	}
	// 0xE0 0x80 0x80 is the overlong 3-byte encoding of NUL.
	if _, _, ok := decodeRune([]byte{0xE0, 0x80, 0x80}); ok {
		t.Fatalf("accepted overlong 3-byte encoding")
	}
}

func TestDecodeRuneStrayContinuation(t *testing.T) {
	if _, _, ok := decodeRune([]byte{0x80}); ok {
		t.Fatalf("accepted stray continuation byte")
	}
}

func TestDecodeRuneLeadOnly(t *testing.T) {
	if _, _, ok := decodeRune([]byte{0xF0}); ok {
		t.Fatalf("accepted truncated 4-byte lead with no continuations")
	}
}

func TestDecodeRuneSurrogate(t *testing.T) {
	// U+D800 encoded as 0xED 0xA0 0x80.
	if _, _, ok := decodeRune([]byte{0xED, 0xA0, 0x80}); ok {
		t.Fatalf("accepted surrogate code point")
	}
}

func TestDecodeRuneAboveMax(t *testing.T) {
	// 0xF4 0x90 0x80 0x80 encodes U+110000, one past the valid range.
	if _, _, ok := decodeRune([]byte{0xF4, 0x90, 0x80, 0x80}); ok {
		t.Fatalf("accepted code point above U+10FFFF")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.Custom(func(t *rapid.T) rune {
			v := rapid.IntRange(0, maxCodePoint).Draw(t, "cp")
			if v >= surrogateLo && v <= surrogateHi {
				v = 'x'
			}
			return rune(v)
		}).Draw(t, "r")

		var buf [4]byte
		n := encodeRune(buf[:], r)
		got, size, ok := decodeRune(buf[:n])
		if !ok {
			t.Fatalf("decode failed for encoded %U", r)
		}
		if got != r || size != n {
			t.Fatalf("round trip mismatch: %U -> %v bytes -> %U (%d)", r, buf[:n], got, size)
		}
	})
}

func TestEncodeRuneMinimalForm(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{0, 1},
		{'A', 1},
		{0x7F, 1},
		{0x80, 2},
		{0x7FF, 2},
		{0x800, 3},
		{0xFFFF, 3},
		{0x10000, 4},
		{maxCodePoint, 4},
	}
	for _, c := range cases {
		if got := runeLen(c.r); got != c.want {
			t.Errorf("runeLen(%U) = %d, want %d", c.r, got, c.want)
		}
		var buf [4]byte
		if n := encodeRune(buf[:], c.r); n != c.want {
			t.Errorf("encodeRune(%U) wrote %d bytes, want %d", c.r, n, c.want)
		}
	}
}
