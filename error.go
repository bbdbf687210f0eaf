package ahocorasick

import "errors"

// Lifecycle errors. Both signal a phase-ordering violation and leave the
// builder/automaton state unchanged; callers can test for them with errors.Is.
var (
	// ErrAlreadyBuilt indicates AddWord or Build was called after Build
	// already succeeded. The automaton is frozen once built.
	ErrAlreadyBuilt = errors.New("ahocorasick: automaton already built")

	// ErrNotBuilt indicates a search was requested before Build succeeded.
	ErrNotBuilt = errors.New("ahocorasick: automaton not built")

	// ErrEmptyPattern indicates AddWord was called with a zero-length key.
	// An empty pattern would degenerately match at every position; the
	// builder rejects it instead of silently accepting a key that can
	// never be reported.
	ErrEmptyPattern = errors.New("ahocorasick: empty pattern")
)
