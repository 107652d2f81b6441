package markov

// sample draws one code point from r's continuations using src. If r is
// nil (no rule matches the current context) it returns 0, end-of-string,
// without consuming any entropy.
//
// The draw range is [0, r.weightTotal], inclusive of weightTotal itself —
// one wider than the sum of weights. That extra slot is what lets
// end-of-string emerge even from a context that was never explicitly
// trained to end: it is a deliberate bias, not an off-by-one, and the test
// suite pins it.
func sample(r *rule, src Source) rune {
	if r == nil {
		return 0
	}
	draw := int64(src.NextBounded(uint32(r.weightTotal + 1)))
	var result rune
	found := false
	r.continuations(func(c continuation) bool {
		draw -= int64(c.weight)
		if draw < 0 {
			result = c.ch
			found = true
			return false
		}
		return true
	})
	if !found {
		return 0
	}
	return result
}
