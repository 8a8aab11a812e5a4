package words

import "github.com/katalvlaran/allwords/alphabet"

// Generator — odometer-style word cursor
//
// Description:
//
//	A Generator walks the word space of an alphabet the way an odometer
//	counts: the rightmost symbol is the fastest-moving digit, and a digit
//	overflowing past the alphabet's maximal symbol wraps to the first
//	symbol and carries one position left. Unlike a fixed-width odometer,
//	a carry past the leftmost digit grows the word by one symbol, so
//	enumeration proceeds length by length and never wraps around.
//
// Algorithm outline (one Next call):
//  1. If a bound is set and the pending word is already longer, report
//     exhaustion. The pending word only ever grows, so exhaustion is
//     permanent.
//  2. Capture the pending word as this call's result.
//  3. Scan the pending word right to left with carry: a symbol with a
//     successor absorbs the increment and stops the scan; a symbol
//     without one (maximal, or foreign to the alphabet) wraps to the
//     first symbol and the carry moves left.
//  4. Carry past the leftmost symbol appends one more first symbol —
//     at that point every position has already wrapped, so the pending
//     word is a uniform run of the first symbol.
//
// Complexity:
//
//	Next: O(len(word)) worst case; amortized O(1) carries per call
//	Memory: the pending word only
type Generator struct {
	// alpha is a non-owning reference; the Generator must not outlive it.
	alpha *alphabet.Alphabet

	// maxLen caps emitted word length, inclusive; <= 0 means unbounded.
	maxLen int

	// pending is the word the next call to Next returns.
	pending []rune
}

// New builds a Generator over a, configured by opts. Without options the
// cursor starts at the single first symbol and runs unbounded. The only
// possible error is ErrNilAlphabet.
//
// Example:
//
//	g, err := words.New(a, words.WithStart("ba"), words.WithMaxLen(3))
func New(a *alphabet.Alphabet, opts ...Option) (*Generator, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}

	var c config
	for _, opt := range opts {
		opt(&c)
	}

	var seed []rune
	switch {
	case c.seedSet:
		seed = c.seed
	case c.lenSet:
		seed = runOfFirst(a, c.startLen)
	default:
		seed = []rune{a.First()}
	}

	return &Generator{alpha: a, maxLen: c.maxLen, pending: seed}, nil
}

// UpTo enumerates every word from the single first symbol up to length
// maxLen, inclusive. maxLen <= 0 lifts the bound.
func UpTo(a *alphabet.Alphabet, maxLen int) (*Generator, error) {
	return New(a, WithMaxLen(maxLen))
}

// Unbounded enumerates every word from the single first symbol, forever.
func Unbounded(a *alphabet.Alphabet) (*Generator, error) {
	return New(a)
}

// From resumes enumeration at start; start itself is the first word
// emitted. See WithStart for the treatment of symbols outside the
// alphabet. maxLen <= 0 lifts the bound.
func From(a *alphabet.Alphabet, start string, maxLen int) (*Generator, error) {
	return New(a, WithStart(start), WithMaxLen(maxLen))
}

// FromLength resumes enumeration at the first word of length startLen,
// skipping every shorter word. maxLen <= 0 lifts the bound.
func FromLength(a *alphabet.Alphabet, startLen, maxLen int) (*Generator, error) {
	return New(a, WithStartLength(startLen), WithMaxLen(maxLen))
}

// Next returns the next word in the enumeration. The second result is
// false once the enumeration is exhausted, i.e. the next word would
// exceed the length bound; from then on every call returns ("", false).
func (g *Generator) Next() (string, bool) {
	if g.maxLen > 0 && len(g.pending) > g.maxLen {
		return "", false
	}

	word := string(g.pending)
	g.advance()

	return word, true
}

// MaxLen returns the inclusive length bound, or 0 when unbounded.
func (g *Generator) MaxLen() int {
	if g.maxLen < 0 {
		return 0
	}

	return g.maxLen
}

// Pending returns the word the next call to Next would emit. Useful for
// capturing a restart point to hand to From on another cursor.
func (g *Generator) Pending() string { return string(g.pending) }

// advance replaces the pending word with its successor.
func (g *Generator) advance() {
	for i := len(g.pending) - 1; i >= 0; i-- {
		if s, ok := g.alpha.Next(g.pending[i]); ok {
			g.pending[i] = s

			return
		}
		// No successor: maximal or foreign symbol. Wrap and carry left.
		g.pending[i] = g.alpha.First()
	}

	// Carry ran past the leftmost digit: every position wrapped to the
	// first symbol, so growing by one more yields the next length's
	// opening word.
	g.pending = append(g.pending, g.alpha.First())
}

// runOfFirst builds n repetitions of the alphabet's first symbol; n <= 0
// yields the empty word.
func runOfFirst(a *alphabet.Alphabet, n int) []rune {
	if n <= 0 {
		return nil
	}
	seed := make([]rune, n)
	for i := range seed {
		seed[i] = a.First()
	}

	return seed
}
