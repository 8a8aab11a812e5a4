// Package allwords is your in-memory word factory: it enumerates, in a
// deterministic order, every finite word that can be spelled over a fixed,
// ordered alphabet — lazily, one word per pull, with optional bounds and
// arbitrary restart points.
//
// 🚀 What is allwords?
//
//	A small, deterministic, zero-surprise library that brings together:
//		• Alphabet: an ordered, deduplicated symbol chain built from any string
//		• Generator: an odometer-style cursor producing the next word on demand
//		• Bounds: cap the word length, or run unbounded forever
//		• Restarts: resume from any word, or from any word length
//		• Unicode: symbols are codepoints — pictographs count as one symbol
//
// ✨ Why choose allwords?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – the same alphabet always yields the same sequence
//   - Pure Go – no cgo, no hidden deps
//   - Parallel-ready – seed independent cursors at different restart points
//
// Under the hood, everything is organized under two subpackages:
//
//	alphabet/ — the ordered symbol chain: construction, successor lookups
//	words/    — the lazy word cursor: Next, bounds, restarts, iter.Seq
//
// Quick ASCII example:
//
//	alphabet "abc", max length 2:
//
//	    a → b → c → aa → ab → ac → ba → bb → bc → ca → cb → cc
//
//	every length-L block enumerates all |alphabet|^L combinations before
//	the word grows by one symbol.
//
// Typical uses: pseudo-random-free test data, brute-force key spaces,
// compact serial numbers and identifiers, partitioned exhaustive scans.
// Dive into README.md and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/allwords
package allwords
