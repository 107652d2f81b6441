package markov

import "github.com/pkg/errors"

// Train feeds data through the trainer's sliding 4-code-point window:
// every decoded code point is associated with the window that preceded
// it, the window then shifts to include it, and after the last code
// point the final window is associated with 0 (end-of-string) exactly
// once. Invalid UTF-8 is skipped one byte at a time and never touches the
// window, matching the "best-effort on malformed input" contract — Train
// never returns an error.
func (m *Model) Train(data []byte) {
	var window [4]rune
	pos := 0
	for pos < len(data) {
		r, size, ok := decodeRune(data[pos:])
		if !ok {
			pos++
			continue
		}
		m.Associate(window, r)
		window[0], window[1], window[2] = window[1], window[2], window[3]
		window[3] = r
		pos += size
	}
	m.Associate(window, 0)
}

// TrainString is a convenience wrapper around Train for string input.
func (m *Model) TrainString(s string) {
	m.Train([]byte(s))
}

// TrainCString trims data at its first NUL byte before training, for
// parity with the reference implementation's NUL-terminated C string
// contract. Plain Train (or TrainString) is the idiomatic entry point for
// Go callers, who rarely NUL-terminate their strings.
func (m *Model) TrainCString(data []byte) {
	if i := indexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	m.Train(data)
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// Generate samples code points into dst starting from the start-of-string
// window, stopping at end-of-string or when the next code point (plus a
// trailing NUL) would not fit in dst. It always writes a terminating 0
// byte if dst has at least one byte of capacity, and returns the number
// of bytes written including that terminator. The written prefix is
// always valid UTF-8.
func (m *Model) Generate(dst []byte) int {
	if len(dst) == 0 {
		return 0
	}
	var window [4]rune
	pos := 0
	for {
		ch := m.Sample(window)
		if ch == 0 {
			break
		}
		n := runeLen(ch)
		if pos+n+1 > len(dst) {
			break
		}
		encodeRune(dst[pos:], ch)
		pos += n
		window[0], window[1], window[2] = window[1], window[2], window[3]
		window[3] = ch
	}
	dst[pos] = 0
	return pos + 1
}

// GenerateString generates text and returns at most maxRunes code points
// of it as a string, with the terminating NUL stripped. maxRunes is
// translated to a worst-case 4-bytes-per-rune buffer internally, and the
// result is cut after maxRunes code points. maxRunes must be positive;
// GenerateString returns ErrInvalidArgument otherwise.
func (m *Model) GenerateString(maxRunes int) (string, error) {
	if maxRunes <= 0 {
		return "", errors.Wrapf(ErrInvalidArgument, "markov: generate: maxRunes %d must be positive", maxRunes)
	}
	buf := make([]byte, maxRunes*4+1)
	n := m.Generate(buf)
	if n == 0 {
		return "", nil
	}
	s := string(buf[:n-1])
	count := 0
	for i := range s {
		if count == maxRunes {
			return s[:i], nil
		}
		count++
	}
	return s, nil
}
