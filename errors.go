package markov

import "errors"

// Sentinel errors returned by the model's operation boundaries. Wrap these
// with github.com/pkg/errors at each call site so callers can still compare
// with errors.Is while getting a byte-offset or operation-stage message.
var (
	// ErrOutOfMemory is returned by New (and so by Load) when an
	// allocation panics while the model is being constructed. Associate,
	// Train and the other mutating methods do not recover allocation
	// panics and return no error.
	ErrOutOfMemory = errors.New("markov: out of memory")

	// ErrBadMagic is returned by Load when the stream does not start
	// with the expected 4-byte magic.
	ErrBadMagic = errors.New("markov: bad magic")

	// ErrBadVersion is returned by Load when the stream's version field
	// is not 2.
	ErrBadVersion = errors.New("markov: unsupported format version")

	// ErrTruncated is returned by Load when the stream ends in the
	// middle of a record.
	ErrTruncated = errors.New("markov: truncated stream")

	// ErrCorruptRecord is returned by Load for a structurally invalid
	// record: a zero-weight continuation with a nonzero character, a
	// duplicate rule name, a duplicate continuation, or an over-long
	// LEB128 value.
	ErrCorruptRecord = errors.New("markov: corrupt record")

	// ErrInvalidArgument is returned when a caller-supplied argument
	// violates a method's documented precondition, such as a
	// non-positive maxRunes passed to GenerateString.
	ErrInvalidArgument = errors.New("markov: invalid argument")

	// ErrInvalidUTF8 is returned by Load when a rule NAME or
	// continuation CHAR does not decode as a well-formed, minimal-form
	// UTF-8 code point. Train never returns this: it silently skips any
	// byte that does not start a valid sequence and resyncs instead of
	// failing, since a saved file is held to a stricter contract than
	// arbitrary training input.
	ErrInvalidUTF8 = errors.New("markov: invalid utf-8")
)
