// Package ahocorasick provides a high-performance Aho-Corasick automaton for
// multi-pattern substring search.
//
// Given a set of byte-string patterns, each optionally associated with a
// caller-supplied value, the automaton finds every occurrence of every pattern
// in a haystack in a single linear pass, including nested and overlapping
// matches. Search cost is O(len(haystack) + number of matches) regardless of
// pattern count, which makes the automaton the engine of choice for large
// literal alternations where per-pattern scanning would be quadratic.
//
// The API follows a strict two-phase lifecycle: patterns are inserted through
// a Builder, then Build freezes them into an immutable Automaton. Once built,
// the automaton is a read-only value and every search method is safe for
// concurrent use from any number of goroutines without synchronization.
//
// Basic usage:
//
//	builder := ahocorasick.NewBuilder()
//	builder.AddWord([]byte("he"), "payload-A")
//	builder.AddWord([]byte("she"), "payload-B")
//	builder.AddWord([]byte("hers"), "payload-C")
//
//	auto, err := builder.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches, _ := auto.FindAll([]byte("ushers"))
//	for _, m := range matches {
//	    fmt.Printf("[%d:%d) %v\n", m.Start, m.End, m.Value)
//	}
//
// Matching is purely byte-wise over the full 0-255 alphabet; the automaton is
// not Unicode-aware. This is sufficient and correct for UTF-8 text: UTF-8's
// byte-level structure guarantees no false cross-codepoint matches as long as
// the patterns themselves are valid UTF-8 byte sequences.
package ahocorasick

// Automaton is a built, immutable Aho-Corasick automaton.
//
// An Automaton is created by (*Builder).Build and can never be modified
// afterwards: no method mutates node, link, or pattern state. It is therefore
// safe to share a single Automaton across any number of goroutines, with each
// FindAll/Iter/Find/IsMatch call independent of all others.
//
// Example:
//
//	auto := ahocorasick.MustBuild([]string{"foo", "bar"})
//	if auto.IsMatch([]byte("foobar")) {
//	    println("matched!")
//	}
type Automaton struct {
	nodes    []node
	patterns []pattern

	// Root start-byte prefilter, derived at build time (see prefilter.go).
	skip startByteSkip

	maxPatternLen int
}

// MustBuild builds an automaton from string patterns, panicking on error.
// It is a convenience for tests and package-level variables; the values
// attached to each pattern are the pattern strings themselves.
func MustBuild(patterns []string) *Automaton {
	b := NewBuilder()
	for _, p := range patterns {
		if err := b.AddString(p, p); err != nil {
			panic("ahocorasick: " + err.Error())
		}
	}
	auto, err := b.Build()
	if err != nil {
		panic("ahocorasick: " + err.Error())
	}
	return auto
}

// PatternCount returns the number of successfully inserted patterns,
// counting each AddWord call separately even when a duplicate key shadowed
// an earlier entry.
func (a *Automaton) PatternCount() int {
	return len(a.patterns)
}

// StateCount returns the number of automaton states, including the root.
// It equals the number of distinct pattern prefixes plus one.
func (a *Automaton) StateCount() int {
	return len(a.nodes)
}

// MaxPatternLen returns the byte length of the longest inserted pattern,
// or 0 if no patterns were inserted.
//
// Callers that search very large inputs in chunks can overlap consecutive
// chunks by MaxPatternLen-1 bytes so that no match is lost at a boundary.
func (a *Automaton) MaxPatternLen() int {
	return a.maxPatternLen
}

// HeapBytes returns the approximate heap memory used by the automaton:
//   - Node table: nodeBytes per state (dominated by the dense child table)
//   - Pattern table: patternBytes per entry, excluding the values themselves
//
// Values attached via AddWord are caller-owned interface values; their
// referents are not counted.
func (a *Automaton) HeapBytes() int {
	return len(a.nodes)*nodeBytes + len(a.patterns)*patternBytes
}
