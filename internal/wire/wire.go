// Package wire implements the byte-level primitives of the model's
// version-2 binary format: a strict UTF-8 rune codec and an unsigned
// LEB128 varint codec, both layered over github.com/icza/bitio. Writer
// composes field writes without per-call error boilerplate: the first
// error is kept and checked once via Err. Reader methods return their
// error from each call.
package wire

import (
	"errors"

	"github.com/icza/bitio"
)

const (
	surrogateLo    = 0xD800
	surrogateHi    = 0xDFFF
	maxCodePoint   = 0x10FFFF
	maxLEB128Bytes = 10 // ceil(64/7); longer is corrupt, not just large
)

// errCorrupt is returned for wire-level structural violations that are
// not a malformed rune: an over-long LEB128 group. The markov package
// maps it to ErrCorruptRecord at the Load boundary.
var errCorrupt = errors.New("wire: corrupt data")

// ErrCorrupt exposes errCorrupt for callers outside this package that
// need to recognize it with errors.Is.
var ErrCorrupt = errCorrupt

// errInvalidRune is returned by ReadRune for any malformed UTF-8
// encoding: a stray continuation or invalid lead byte, an overlong
// form, a surrogate, or a code point past U+10FFFF. The markov package
// maps it to ErrInvalidUTF8 at the Load boundary, distinct from
// errCorrupt, so a bad rune in a NAME or CHAR field is reported
// differently from a bad LEB128 group or a duplicate record.
var errInvalidRune = errors.New("wire: invalid rune encoding")

// ErrInvalidRune exposes errInvalidRune for callers outside this package
// that need to recognize it with errors.Is.
var ErrInvalidRune = errInvalidRune

// Writer accumulates the first error encountered across any number of
// field writes; callers check it once via Err after writing every field
// of a record.
type Writer struct {
	bw  *bitio.Writer
	err error
}

func NewWriter(w *bitio.Writer) *Writer {
	return &Writer{bw: w}
}

func (w *Writer) Err() error { return w.err }

func (w *Writer) WriteByte(b byte) {
	if w.err != nil {
		return
	}
	w.err = w.bw.WriteByte(b)
}

func (w *Writer) WriteBytes(b []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.bw.Write(b)
}

// WriteRune writes r's minimal-form UTF-8 encoding (1-4 bytes). Encoding
// 0 yields the single byte 0x00.
func (w *Writer) WriteRune(r rune) {
	var buf [4]byte
	n := encodeRune(buf[:], r)
	w.WriteBytes(buf[:n])
}

// WriteLEB128 appends the unsigned LEB128 encoding of v: 7 payload bits
// per byte, least-significant group first, high bit set on every byte
// but the last.
func (w *Writer) WriteLEB128(v uint64) {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			w.WriteByte(b | 0x80)
			continue
		}
		w.WriteByte(b)
		return
	}
}

// Reader decodes the same primitives Writer encodes, against a 1-byte
// pushback buffer so Load can "peek" the next byte (to distinguish a rule
// NAME from the EOF_MARK) without requiring an io.Seeker.
type Reader struct {
	br         *bitio.Reader
	pending    byte
	hasPending bool
	pos        int64
}

func NewReader(r *bitio.Reader) *Reader {
	return &Reader{br: r}
}

// Pos returns the number of bytes consumed so far, for error context.
func (r *Reader) Pos() int64 { return r.pos }

// PeekByte returns the next byte without consuming it.
func (r *Reader) PeekByte() (byte, error) {
	if r.hasPending {
		return r.pending, nil
	}
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, err
	}
	r.pending = b
	r.hasPending = true
	return b, nil
}

func (r *Reader) ReadByte() (byte, error) {
	if r.hasPending {
		r.hasPending = false
		r.pos++
		return r.pending, nil
	}
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// ReadRune decodes one strict, minimal-form UTF-8 code point. Unlike the
// trainer, which skips a byte that does not decode, a malformed sequence
// here is a wire-format
// violation, not input noise, so it is reported as an error rather than
// skipped.
func (r *Reader) ReadRune() (rune, error) {
	b0, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	switch {
	case b0 < 0x80:
		return rune(b0), nil
	case b0&0xE0 == 0xC0:
		return r.readContinuation(rune(b0&0x1F), 1, 0x80)
	case b0&0xF0 == 0xE0:
		return r.readContinuation(rune(b0&0x0F), 2, 0x800)
	case b0&0xF8 == 0xF0:
		return r.readContinuation(rune(b0&0x07), 3, 0x10000)
	default:
		return 0, errInvalidRune
	}
}

func (r *Reader) readContinuation(lead rune, n int, min rune) (rune, error) {
	v := lead
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b&0xC0 != 0x80 {
			return 0, errInvalidRune
		}
		v = v<<6 | rune(b&0x3F)
	}
	if v < min || v > maxCodePoint || (v >= surrogateLo && v <= surrogateHi) {
		return 0, errInvalidRune
	}
	return v, nil
}

// ReadLEB128 decodes an unsigned LEB128 value.
func (r *Reader) ReadLEB128() (uint64, error) {
	var v uint64
	for i := 0; i < maxLEB128Bytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7F) << uint(7*i)
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, errCorrupt
}

func encodeRune(dst []byte, r rune) int {
	switch {
	case r < 0x80:
		dst[0] = byte(r)
		return 1
	case r < 0x800:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r&0x3F)
		return 2
	case r < 0x10000:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte((r>>6)&0x3F)
		dst[2] = 0x80 | byte(r&0x3F)
		return 3
	default:
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = 0x80 | byte((r>>12)&0x3F)
		dst[2] = 0x80 | byte((r>>6)&0x3F)
		dst[3] = 0x80 | byte(r&0x3F)
		return 4
	}
}
