package ahocorasick

// nodeID indexes into the automaton's node arena.
// 32 bits keeps the dense child tables compact; the arena cannot exceed the
// total bytes of all inserted patterns plus one, so overflow would require
// 2 GiB of pattern text.
type nodeID int32

const (
	// rootID is the root state. It always exists, even before any insertion.
	rootID nodeID = 0

	// noNode marks an absent child transition or dict-suffix link.
	noNode nodeID = -1

	// noOutput marks a state where no pattern ends.
	noOutput int32 = -1
)

// node is one trie/automaton state.
//
// The child table is dense over the full byte range so that every transition
// is a single index, regardless of haystack content. The fail link points to
// the state for the longest proper suffix of this state's path that is itself
// a trie path; the root's fail link is the root itself and is never followed
// as a transition. dictSuffix is the nearest state along the fail chain where
// some pattern ends, or noNode; it is what lets a search report all patterns
// ending at a position, not just the longest.
type node struct {
	children   [256]nodeID
	fail       nodeID
	output     int32 // pattern index, noOutput if no pattern ends here
	dictSuffix nodeID
}

// nodeBytes is the in-memory size of one node: the 256-entry child table
// plus the three link/output fields, all 4 bytes each.
const nodeBytes = 256*4 + 3*4

// pattern is one inserted pattern entry. The key itself is not retained;
// only its length is needed to recover match start offsets.
type pattern struct {
	value any
	len   int
}

// patternBytes is the in-memory size of one pattern entry: a 16-byte
// interface header plus the length field.
const patternBytes = 16 + 8
