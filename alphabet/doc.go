// Package alphabet defines the ordered symbol chain that word enumeration
// counts in: an immutable value mapping every symbol to its successor.
//
// 🚀 What is an Alphabet?
//
//	An Alphabet is built from the distinct symbols of a source string, in
//	the order they first appear.  It behaves like the digit set of a
//	positional numeral system:
//	  • First() is the zero digit — the seed of fresh enumeration and the
//	    wrap target of carry propagation
//	  • Next(r) is the successor relation — the next digit, or none for
//	    the maximal symbol
//	  • repeated symbols in the source are idempotent: "aab", "ab" and
//	    "aaabbb" all build the identical two-symbol alphabet
//
// ✨ Key properties:
//   - codepoint-level symbols: a pictograph is one symbol, not four bytes
//   - immutable after construction — share freely across goroutines
//   - at least two distinct symbols required; construction rejects less
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/allwords/alphabet"
//
//	a, err := alphabet.FromString("abc")
//	if err != nil {
//	  // handle ErrTooFewSymbols
//	}
//	fmt.Println(a.First())   // 'a'
//	fmt.Println(a.Next('a')) // 'b', true
//	fmt.Println(a.Next('c')) // 0, false — 'c' is maximal
//
// Performance:
//
//   - Construction: O(len(source)) time, O(distinct symbols) memory
//   - Next / Contains: O(1) map lookups
//
// See examples in example_test.go and the word cursor in package words.
package alphabet
