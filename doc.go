// Package markov implements a trainable, in-memory 4th-order Markov model
// over Unicode code points.
//
// # Overview
//
// The model learns character transition frequencies from UTF-8 text: for
// every 4 code points of history (a "context"), it records which code point
// followed and how often. Sampling walks those weighted continuations to
// produce new, statistically similar text one code point at a time.
//
// # When to Use
//
// The model is suited to:
//   - Generating plausible-looking names, words or short strings from a
//     training corpus (usernames, procedural flavor text, fuzz corpora)
//   - Lightweight "sounds like this language" text synthesis without the
//     cost of a full language model
//
// # When NOT to Use
//
// The model is not suited to:
//   - Long-form coherent text (it has no notion of grammar or meaning
//     beyond 4 code points of history)
//   - Anything requiring smoothing, back-off to shorter contexts, learning
//     rates, or calibrated probabilities — none of those are implemented
//
// # Basic Usage
//
//	m, err := markov.New(16, markov.WithSeed(0xB00B))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.TrainString("hello world")
//	s, err := m.GenerateString(64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s)
//
//	var buf bytes.Buffer
//	if err := m.Save(&buf); err != nil {
//	    log.Fatal(err)
//	}
//	m2, err := markov.Load(&buf, 16)
//
// # Performance Characteristics
//
// Training is O(n) in input length. Sampling and generation are O(k) per
// character, where k is the chain length of the context's hash bucket
// (typically short; see the storage-layout note in table.go). Save and Load
// are O(r) in the number of distinct learned contexts.
package markov
