// Package words defines tunable options for word enumeration cursors.
package words

// Option configures a Generator via functional arguments passed to New.
// Later options override earlier ones; WithStart and WithStartLength are
// mutually exclusive seeds, so the last one supplied wins.
type Option func(*config)

// config collects constructor parameters before the seed is resolved
// against the alphabet.
type config struct {
	// maxLen caps emitted word length, inclusive. Zero or negative
	// means unbounded.
	maxLen int

	// seed is the explicit starting word, valid when seedSet.
	seed    []rune
	seedSet bool

	// startLen requests a run of the alphabet's first symbol as the
	// starting word, valid when lenSet.
	startLen int
	lenSet   bool
}

// WithMaxLen caps the length of emitted words at n, inclusive.
// Zero or negative n lifts the cap (unbounded enumeration).
//
// Example:
//
//	g, err := words.New(a, words.WithMaxLen(4))
func WithMaxLen(n int) Option {
	return func(c *config) { c.maxLen = n }
}

// WithStart makes the cursor emit word first and continue from there.
// The word is not validated against the alphabet: symbols that are not
// part of it behave like maximal symbols and overflow on the first carry
// through their position. This keeps approximate restart points usable,
// e.g. when distributing ranges of a large word space across workers.
func WithStart(word string) Option {
	return func(c *config) {
		c.seed = []rune(word)
		c.seedSet = true
		c.lenSet = false
	}
}

// WithStartLength makes the cursor start at the first word of length n,
// i.e. n repetitions of the alphabet's first symbol. n <= 0 seeds the
// empty word, whose successor is the first word of length 1.
func WithStartLength(n int) Option {
	return func(c *config) {
		c.startLen = n
		c.lenSet = true
		c.seedSet = false
	}
}
