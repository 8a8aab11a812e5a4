// Package words provides the lazy cursor that enumerates every word over
// an alphabet.Alphabet, in deterministic odometer order.
//
// 🚀 What is a Generator?
//
//	A Generator is a forward-only cursor over the word space of an
//	alphabet.  Each Next call returns one word and advances the cursor by
//	a variable-width increment-with-carry, exactly like a base-N odometer
//	whose width grows when the most significant digit overflows:
//	  • a, b, c, aa, ab, ac, ba, …, cc, aaa, …   (alphabet "abc")
//	  • every length-L block covers all |alphabet|^L combinations before
//	    the first word of length L+1 appears
//
// ✨ Key features:
//   - optional inclusive length bound (WithMaxLen) — or run forever
//   - restart from any word (From) or any word length (FromLength)
//   - out-of-alphabet symbols in a restart word degrade gracefully: they
//     overflow like maximal symbols instead of erroring
//   - range-over-func consumption via Seq, plus Take and Count helpers
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/allwords/alphabet"
//	  "github.com/katalvlaran/allwords/words"
//	)
//
//	a, _ := alphabet.FromString("01")
//	g, err := words.UpTo(a, 3)
//	if err != nil {
//	  // handle ErrNilAlphabet
//	}
//	for w := range g.Seq() {
//	  fmt.Println(w) // 0, 1, 00, 01, 10, 11, 000, … 111
//	}
//
// Concurrency:
//
//	An Alphabet is immutable and freely shared; a Generator is single-owner.
//	To enumerate in parallel, seed one independent Generator per worker at a
//	different restart point — no coordination is needed between them.
//
// Performance:
//
//   - Next: O(current word length) worst case, O(1) amortized per digit
//   - memory: one pending word per Generator
//
// See examples in example_test.go and the scenario files under examples/.
package words
