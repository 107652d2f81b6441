package markov

// Pure, buffer-oriented unsigned LEB128 codec. This is the standalone
// codec component the wire format is built from; internal/wire carries
// its own stream-oriented copy of the same algorithm for use against a
// bitio-backed io.Reader during Load, where bytes arrive one at a time
// rather than as an already-materialized slice.
const maxLEB128Bytes = 10 // ceil(64/7); unterminated beyond this is corrupt

// putLEB128 appends the unsigned LEB128 encoding of v to dst and returns
// the extended slice. Each byte carries 7 payload bits, least-significant
// group first; the high bit marks "more bytes follow". The value 0
// encodes to a single 0x00 byte.
func putLEB128(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			dst = append(dst, b|0x80)
			continue
		}
		dst = append(dst, b)
		return dst
	}
}

// getLEB128 decodes an unsigned LEB128 value from the front of b,
// returning the value, the number of bytes consumed, and ok=false if b
// ends before a terminator byte or the value would exceed
// maxLEB128Bytes groups.
func getLEB128(b []byte) (v uint64, n int, ok bool) {
	for n = 0; n < maxLEB128Bytes && n < len(b); n++ {
		v |= uint64(b[n]&0x7F) << uint(7*n)
		if b[n]&0x80 == 0 {
			return v, n + 1, true
		}
	}
	return 0, 0, false
}
