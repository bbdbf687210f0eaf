package ahocorasick

// scan drives the automaton over haystack[at:], invoking emit for every
// match in order. emit returns false to stop early.
//
// Per byte: chase failure links until a transition exists (or the root is
// reached), take the transition if there is one, then walk the dict-suffix
// chain from the resulting state and emit every pattern ending here. The
// chain starts at the current state, so the longest match at a position is
// emitted first, followed by progressively shorter suffix matches. No input
// byte is ever revisited; total cost is O(len(haystack) + matches emitted).
func (a *Automaton) scan(haystack []byte, at int, emit func(Match) bool) {
	nodes := a.nodes
	state := rootID
	for i := at; i < len(haystack); i++ {
		if state == rootID && a.skip.enabled() {
			// At the root, bytes that start no pattern cannot change
			// state or produce output; jump to the next byte that can.
			j := a.skip.find(haystack, i)
			if j < 0 {
				return
			}
			i = j
		}
		c := haystack[i]

		for state != rootID && nodes[state].children[c] == noNode {
			state = nodes[state].fail
		}
		if next := nodes[state].children[c]; next != noNode {
			state = next
		}

		for s := state; s > rootID; s = nodes[s].dictSuffix {
			if out := nodes[s].output; out != noOutput {
				p := &a.patterns[out]
				if !emit(Match{Start: i + 1 - p.len, End: i + 1, Value: p.value}) {
					return
				}
			}
		}
	}
}

// FindAll returns every occurrence of every pattern in haystack, including
// nested and overlapping matches.
//
// Matches are ordered by strictly nondecreasing End. Among matches with the
// same End, the longest pattern comes first, followed by its progressively
// shorter suffix patterns. Two FindAll calls with equal input on the same
// automaton return identical sequences.
//
// Calling FindAll on a nil *Automaton returns ErrNotBuilt; a non-nil
// automaton can never fail, since every byte value has a defined transition.
func (a *Automaton) FindAll(haystack []byte) ([]Match, error) {
	if a == nil {
		return nil, ErrNotBuilt
	}
	var matches []Match
	a.scan(haystack, 0, func(m Match) bool {
		matches = append(matches, m)
		return true
	})
	return matches, nil
}

// Iter streams every match in haystack to fn, in FindAll order, without
// accumulating a slice. fn returns false to stop the scan early.
//
// Calling Iter on a nil *Automaton returns ErrNotBuilt.
func (a *Automaton) Iter(haystack []byte, fn func(Match) bool) error {
	if a == nil {
		return ErrNotBuilt
	}
	a.scan(haystack, 0, fn)
	return nil
}

// Find returns the first match in haystack[at:], or nil if there is none.
//
// "First" means the match with the smallest end offset; when several
// patterns end there, the longest is returned. Find on a nil *Automaton
// returns nil.
func (a *Automaton) Find(haystack []byte, at int) *Match {
	if a == nil || at < 0 || at > len(haystack) {
		return nil
	}
	var found *Match
	a.scan(haystack, at, func(m Match) bool {
		found = &m
		return false
	})
	return found
}

// IsMatch reports whether any pattern occurs in haystack. It stops at the
// first match, so a hit near the front costs O(position of the hit).
func (a *Automaton) IsMatch(haystack []byte) bool {
	return a.Find(haystack, 0) != nil
}
