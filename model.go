package markov

import "github.com/pkg/errors"

// Model owns a context table, a PRNG source, and the bucket-count
// parameter the table was built with. It is single-owner and not
// thread-safe: every method below assumes exclusive access, and sampling
// mutates the PRNG state even though it reads the table.
type Model struct {
	table     *table
	source    Source
	ownSource bool // true when the package's own PCG32 was installed (default or WithSeed)
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithSeed selects the default PCG32 generator and seeds it. It is
// mutually exclusive with WithSource; the option applied last wins.
func WithSeed(seed uint32) Option {
	return func(m *Model) {
		m.source = newPCG32(seed)
		m.ownSource = true
	}
}

// WithSource installs a caller-supplied Source, replacing the default
// generator. The model never mutates or resets state owned by a
// caller-supplied Source beyond calling NextBounded on it.
func WithSource(src Source) Option {
	return func(m *Model) {
		m.source = src
		m.ownSource = false
	}
}

// New creates an empty model with 2^bucketBits hash buckets. bucketBits
// must be in [1, 24]. Without WithSeed or WithSource, the model installs
// a default PCG32 generator seeded from 0.
func New(bucketBits int, opts ...Option) (m *Model, err error) {
	if bucketBits < 1 || bucketBits > 24 {
		return nil, errors.Errorf("markov: bucketBits %d out of range [1, 24]", bucketBits)
	}
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, errors.Wrap(ErrOutOfMemory, "markov: new")
		}
	}()

	m = &Model{
		table:     newTable(bucketBits),
		source:    newPCG32(0),
		ownSource: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Associate records one observation: ch followed the 4-code-point context
// name. Calling it k times for the same name accumulates weightTotal == k
// on that context's rule.
func (m *Model) Associate(name [4]rune, ch rune) {
	m.table.associate(context(name), ch)
}

// Sample draws the next code point for the given 4-code-point context. An
// unknown context is not an error: it returns 0 (end-of-string) without
// consuming PRNG output.
func (m *Model) Sample(name [4]rune) rune {
	r := m.table.lookup(context(name))
	if r == nil {
		return 0
	}
	return sample(r, m.source)
}

// RuleCount returns the number of distinct contexts the model has
// learned. Intended for diagnostics (see cmd/markov's stats subcommand),
// not part of the trained behavior.
func (m *Model) RuleCount() int { return m.table.ruleCount() }

// MaxChainLen returns the longest hash-bucket chain currently in the
// table, a rough load-factor signal for choosing bucketBits.
func (m *Model) MaxChainLen() int { return m.table.maxChainLen() }

// BucketBits returns the log2 bucket count the model was constructed
// with (the bucketBits argument to New or Load).
func (m *Model) BucketBits() int { return m.table.bits }

// ContinuationCount returns the total number of learned (context, code
// point) continuation pairs across every rule in the table — a finer
// grained size signal than RuleCount, since one rule can hold several
// continuations.
func (m *Model) ContinuationCount() int { return m.table.continuationCount() }
