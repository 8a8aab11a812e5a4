package words

import "iter"

// Seq adapts the cursor to a range-over-func iterator. The sequence is
// single-use: it drains the same underlying cursor that Next does, and
// breaking out of the range leaves the cursor positioned after the last
// yielded word.
//
// Example:
//
//	for w := range g.Seq() {
//	  if len(w) > 2 {
//	    break
//	  }
//	  fmt.Println(w)
//	}
func (g *Generator) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for w, ok := g.Next(); ok; w, ok = g.Next() {
			if !yield(w) {
				return
			}
		}
	}
}

// Take returns up to n next words; fewer when the cursor exhausts first.
// n <= 0 yields an empty, non-nil slice.
func (g *Generator) Take(n int) []string {
	if n < 0 {
		n = 0
	}
	out := make([]string, 0, n)
	for len(out) < n {
		w, ok := g.Next()
		if !ok {
			break
		}
		out = append(out, w)
	}

	return out
}

// Count drains the cursor and returns the number of words it produced.
// Calling Count on an unbounded cursor never returns.
func (g *Generator) Count() int {
	n := 0
	for _, ok := g.Next(); ok; _, ok = g.Next() {
		n++
	}

	return n
}
