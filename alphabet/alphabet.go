package alphabet

// Alphabet — ordered symbol chain
//
// Description:
//
//	An Alphabet is the digit set of a variable-width positional counter.
//	It stores, for every distinct symbol of its source, the next symbol
//	in source order; the final symbol has no successor and is the point
//	where an incremented digit wraps back to First().
//
// Construction outline:
//  1. Scan the source left to right, one codepoint at a time.
//  2. The first codepoint becomes First() and the current predecessor.
//  3. Each later codepoint c that differs from the predecessor and is not
//     yet registered as a key records predecessor→c and becomes the new
//     predecessor; every other occurrence is skipped.
//  4. The final predecessor is the maximal symbol, Last().
//  5. Fewer than 2 registered symbols → ErrTooFewSymbols.
//
// Step 3 makes repeats idempotent: a symbol's successor is fixed by its
// first transition away from it, so "aab", "ab" and "aaabbb" construct
// the identical alphabet.
//
// Complexity:
//
//	Construction: O(len(source)) time, O(k) memory for k distinct symbols
//	Next/Contains: O(1)
type Alphabet struct {
	// next maps each symbol to its successor. The maximal symbol is
	// deliberately absent: a failed lookup means "no successor".
	next  map[rune]rune
	first rune
	last  rune
}

// FromString builds an Alphabet from the distinct codepoints of s, in the
// order they first appear. It returns ErrTooFewSymbols when s holds fewer
// than 2 distinct codepoints.
//
// Example:
//
//	a, err := FromString("0123456789abcdef")
func FromString(s string) (*Alphabet, error) {
	return FromRunes([]rune(s))
}

// FromRunes builds an Alphabet from a rune slice; see FromString.
// The slice is only read, never retained.
func FromRunes(rs []rune) (*Alphabet, error) {
	next := make(map[rune]rune, len(rs))

	var first, prev rune
	seeded := false
	for _, c := range rs {
		if !seeded {
			first, prev = c, c
			seeded = true
			continue
		}
		if c == prev {
			continue
		}
		if _, dup := next[c]; dup {
			continue
		}
		next[prev] = c
		prev = c
	}

	// prev is the maximal symbol; it carries no entry in next.
	if !seeded || len(next) < 1 {
		return nil, ErrTooFewSymbols
	}

	return &Alphabet{next: next, first: first, last: prev}, nil
}

// First returns the symbol with ordinal 0.
func (a *Alphabet) First() rune { return a.first }

// Last returns the maximal symbol, the one with no successor.
func (a *Alphabet) Last() rune { return a.last }

// Len returns the number of distinct symbols.
func (a *Alphabet) Len() int { return len(a.next) + 1 }

// Next returns the successor of r and true, or 0 and false when r is the
// maximal symbol or does not belong to the alphabet. The two false cases
// are indistinguishable on purpose: word enumeration treats foreign
// symbols exactly like maximal ones (see package words).
func (a *Alphabet) Next(r rune) (rune, bool) {
	s, ok := a.next[r]

	return s, ok
}

// Contains reports whether r is one of the alphabet's symbols.
func (a *Alphabet) Contains(r rune) bool {
	if r == a.last {
		return true
	}
	_, ok := a.next[r]

	return ok
}

// Runes returns the symbols in chain order, first to last, as a fresh slice.
func (a *Alphabet) Runes() []rune {
	rs := make([]rune, 0, a.Len())
	for c := a.first; ; {
		rs = append(rs, c)
		s, ok := a.next[c]
		if !ok {
			break
		}
		c = s
	}

	return rs
}

// String returns the symbols in chain order as a string, so that
// FromString(a.String()) reconstructs an equal alphabet.
func (a *Alphabet) String() string { return string(a.Runes()) }
