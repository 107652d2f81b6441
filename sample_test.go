package markov

import "testing"

func TestSampleNilRuleReturnsZero(t *testing.T) {
	if ch := sample(nil, newPCG32(1)); ch != 0 {
		t.Fatalf("sample(nil, _) = %q, want 0", ch)
	}
}

func TestSampleSingleContinuationFrequency(t *testing.T) {
	tbl := newTable(4)
	name := context{0, 0, 0, 'a'}
	tbl.associate(name, 'b') // weightTotal = 1, single continuation weight 1

	r := tbl.lookup(name)
	src := newPCG32(12345)

	const trials = 200000
	var hits, misses int
	for i := 0; i < trials; i++ {
		switch sample(r, src) {
		case 'b':
			hits++
		case 0:
			misses++
		default:
			t.Fatalf("unexpected sample result")
		}
	}
	// Weight 1 against weightTotal+1 == 2: each outcome should land
	// near 50%.
	frac := float64(hits) / float64(trials)
	if frac < 0.47 || frac > 0.53 {
		t.Fatalf("P(b) = %.4f, want ~0.5 (+1 contract)", frac)
	}
	if hits+misses != trials {
		t.Fatalf("hits+misses = %d, want %d", hits+misses, trials)
	}
}

func TestSampleRelativeFrequencies(t *testing.T) {
	tbl := newTable(4)
	name := context{0, 0, 0, 0}
	for i := 0; i < 5; i++ {
		tbl.associate(name, 'X')
	}
	for i := 0; i < 5; i++ {
		tbl.associate(name, 'Y')
	}
	r := tbl.lookup(name)
	if r.weightTotal != 10 {
		t.Fatalf("weightTotal = %d, want 10", r.weightTotal)
	}

	src := newPCG32(999)
	const trials = 200000
	counts := map[rune]int{}
	for i := 0; i < trials; i++ {
		counts[sample(r, src)]++
	}

	// Expected ratios X:Y:end are 5:5:1, i.e. 5/11, 5/11, 1/11.
	total := float64(trials)
	checkFrac(t, "X", float64(counts['X'])/total, 5.0/11, 0.03)
	checkFrac(t, "Y", float64(counts['Y'])/total, 5.0/11, 0.03)
	checkFrac(t, "end", float64(counts[0])/total, 1.0/11, 0.03)
}

func checkFrac(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if got < want-tol || got > want+tol {
		t.Errorf("P(%s) = %.4f, want %.4f +/- %.4f", label, got, want, tol)
	}
}
