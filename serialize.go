package markov

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"

	"github.com/szymonszl/markov/internal/wire"
)

// Version-2 wire format, matching the reference implementation's file
// layout byte-for-byte:
//
//	MAGIC    4 bytes  = 'l', 0x05, 0x01, 0x04
//	VERSION  LEB128   = 2
//	RULES*   zero or more rule records
//	EOF_MARK 1 byte   = 0xFF
//
// Rule record: NAME (4 runes) CONTS* RULE_END(0x00 0x00)
// Continuation record: CHAR (1 rune) WEIGHT (LEB128, nonzero)
var magic = [4]byte{'l', 0x05, 0x01, 0x04}

const formatVersion = 2
const eofMark = 0xFF

// Save writes the model's learned rules to w in the version-2 format.
// Rule and continuation order follow the table's internal iteration
// order (see table.iterateRules): stable within this process, not
// portable across models.
func (m *Model) Save(w io.Writer) error {
	bw := bitio.NewWriter(w)
	ww := wire.NewWriter(bw)

	ww.WriteBytes(magic[:])
	ww.WriteLEB128(formatVersion)

	m.table.iterateRules(func(r *rule) bool {
		for _, cp := range r.name {
			ww.WriteRune(cp)
		}
		r.continuations(func(c continuation) bool {
			ww.WriteRune(c.ch)
			ww.WriteLEB128(uint64(c.weight))
			return ww.Err() == nil
		})
		ww.WriteByte(0x00) // RULE_END: CHAR=0
		ww.WriteByte(0x00) // RULE_END: WEIGHT=0
		return ww.Err() == nil
	})
	if err := ww.Err(); err != nil {
		return errors.Wrap(err, "markov: save")
	}

	ww.WriteByte(eofMark)
	if err := ww.Err(); err != nil {
		return errors.Wrap(err, "markov: save")
	}
	// Every write above is byte-aligned, so there is never a partial
	// byte pending; Close is intentionally not called here since it
	// would also close w if w happens to implement io.Closer (e.g. an
	// *os.File), which is not Save's decision to make.
	return nil
}

// Load reads a version-2 model file from r into a fresh model with
// 2^bucketBits buckets. The loader rehashes every rule name against that
// bucket count; the file itself carries no bucket-count field, so a
// different bucketBits than the model that wrote the file is expected and
// supported, not a compatibility hazard.
//
// Load is strict: any structural deviation from the format aborts with a
// wrapped error identifying the byte offset at which it was detected.
func Load(r io.Reader, bucketBits int, opts ...Option) (*Model, error) {
	m, err := New(bucketBits, opts...)
	if err != nil {
		return nil, err
	}

	br := bitio.NewReader(r)
	rr := wire.NewReader(br)

	var hdr [4]byte
	for i := range hdr {
		b, err := rr.ReadByte()
		if err != nil {
			return nil, errors.Wrapf(ErrTruncated, "markov: load: magic at byte %d", rr.Pos())
		}
		hdr[i] = b
	}
	if hdr != magic {
		return nil, errors.Wrapf(ErrBadMagic, "markov: load: at byte %d", rr.Pos())
	}

	version, err := rr.ReadLEB128()
	if err != nil {
		return nil, wireErr(err, rr.Pos(), "markov: load: version")
	}
	if version != formatVersion {
		return nil, errors.Wrapf(ErrBadVersion, "markov: load: got version %d at byte %d", version, rr.Pos())
	}

	seen := make(map[context]bool)
	for {
		peek, err := rr.PeekByte()
		if err != nil {
			return nil, errors.Wrapf(ErrTruncated, "markov: load: at byte %d", rr.Pos())
		}
		if peek == eofMark {
			if _, err := rr.ReadByte(); err != nil {
				return nil, errors.Wrapf(ErrTruncated, "markov: load: at byte %d", rr.Pos())
			}
			return m, nil
		}

		var name context
		for i := range name {
			cp, err := rr.ReadRune()
			if err != nil {
				return nil, wireErr(err, rr.Pos(), "markov: load: rule name")
			}
			name[i] = cp
		}
		if seen[name] {
			return nil, errors.Wrapf(ErrCorruptRecord, "markov: load: duplicate rule at byte %d", rr.Pos())
		}
		seen[name] = true

		ru := m.table.lookupOrCreate(name)
		for {
			ch, err := rr.ReadRune()
			if err != nil {
				return nil, wireErr(err, rr.Pos(), "markov: load: continuation char")
			}
			weight, err := rr.ReadLEB128()
			if err != nil {
				return nil, wireErr(err, rr.Pos(), "markov: load: continuation weight")
			}
			if weight == 0 {
				if ch != 0 {
					return nil, errors.Wrapf(ErrCorruptRecord, "markov: load: zero weight for nonzero char at byte %d", rr.Pos())
				}
				break // RULE_END
			}
			if ru.find(ch) != nil {
				return nil, errors.Wrapf(ErrCorruptRecord, "markov: load: duplicate continuation at byte %d", rr.Pos())
			}
			ru.append(ch)
			ru.find(ch).weight = uint32(weight)
			ru.weightTotal += weight
		}
	}
}

func wireErr(err error, pos int64, msg string) error {
	switch err {
	case wire.ErrInvalidRune:
		return errors.Wrapf(ErrInvalidUTF8, "%s at byte %d", msg, pos)
	case wire.ErrCorrupt:
		return errors.Wrapf(ErrCorruptRecord, "%s at byte %d", msg, pos)
	default:
		return errors.Wrapf(ErrTruncated, "%s at byte %d", msg, pos)
	}
}
