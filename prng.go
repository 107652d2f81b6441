package markov

// Source is the pluggable PRNG contract used by sampling. Implementations
// must be deterministic given their internal state: the same sequence of
// NextBounded calls against freshly-seeded, identical state must produce the
// same sequence of results. This is what makes a trained-then-saved model's
// generation reproducible for a pinned seed.
//
// max is always >= 1; NextBounded returns a value in [0, max).
type Source interface {
	NextBounded(max uint32) uint32
}

// pcg32 is the default Source: a single-stream, 64-bit-state, 32-bit-output
// PCG generator (O'Neill, "PCG: A Family of Simple Fast Space-Efficient
// Statistically Good Algorithms for Random Number Generation"). It is the
// generator the original reference implementation recommends as its
// default; any Source satisfying the interface above may replace it.
type pcg32 struct {
	state uint64
	inc   uint64
}

// pcg32Multiplier is the LCG multiplier used by the reference PCG32
// implementation.
const pcg32Multiplier = 6364136223846793005

// newPCG32 seeds a generator from a 32-bit seed, as the model's
// construction contract requires. The stream constant is derived from the
// seed itself so construction only needs the one caller-supplied value.
func newPCG32(seed uint32) *pcg32 {
	p := &pcg32{}
	initSeq := uint64(seed)<<1 | 1
	p.inc = initSeq | 1
	p.state = 0
	p.step()
	p.state += uint64(seed)
	p.step()
	return p
}

func (p *pcg32) step() {
	p.state = p.state*pcg32Multiplier + p.inc
}

// next32 advances the generator and returns one 32-bit output word via the
// XSH-RR (xorshift-high, random-rotate) output function.
func (p *pcg32) next32() uint32 {
	old := p.state
	p.step()
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// NextBounded implements Source using Lemire's nearly-divisionless bounded
// generation over the raw 32-bit stream: a 64-bit product is computed and
// the low 32 bits are resampled on the rare occasion that they fall in the
// region that would bias the result, keeping the overwhelming majority of
// draws to a single call to next32.
func (p *pcg32) NextBounded(max uint32) uint32 {
	if max == 0 {
		return 0
	}
	m := uint64(p.next32()) * uint64(max)
	low := uint32(m)
	if low < max {
		threshold := -max % max
		for low < threshold {
			m = uint64(p.next32()) * uint64(max)
			low = uint32(m)
		}
	}
	return uint32(m >> 32)
}
