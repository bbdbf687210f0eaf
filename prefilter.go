package ahocorasick

import "github.com/coregx/ahocorasick/internal/memchr"

// startByteSkip is the root-state prefilter.
//
// While the automaton sits in the root state, a byte with no root child
// leaves it in the root state and can produce no output, so the scan may
// jump straight to the next occurrence of a byte that some pattern starts
// with. When the patterns share at most three distinct first bytes, the jump
// is a SWAR byte search that processes 8 bytes per step instead of one.
//
// The skip is behavior-invisible: it only ever skips bytes the plain loop
// would have consumed in the root state with no effect.
type startByteSkip struct {
	// count is the number of distinct root child bytes, or skipDisabled
	// when there are too many for a multi-needle search to pay off.
	count int8
	bytes [3]byte
}

const skipDisabled int8 = -1

// newStartByteSkip derives the skip from the root's child table.
func newStartByteSkip(root *node) startByteSkip {
	s := startByteSkip{}
	for c := 0; c < 256; c++ {
		if root.children[c] == noNode {
			continue
		}
		if s.count == int8(len(s.bytes)) {
			return startByteSkip{count: skipDisabled}
		}
		s.bytes[s.count] = byte(c)
		s.count++
	}
	return s
}

func (s *startByteSkip) enabled() bool {
	return s.count != skipDisabled
}

// find returns the first index >= at of a root start byte in haystack,
// or -1 if none remains. With zero start bytes (an empty automaton) every
// position is rejected.
func (s *startByteSkip) find(haystack []byte, at int) int {
	var rel int
	switch s.count {
	case 1:
		rel = memchr.Index(haystack[at:], s.bytes[0])
	case 2:
		rel = memchr.Index2(haystack[at:], s.bytes[0], s.bytes[1])
	case 3:
		rel = memchr.Index3(haystack[at:], s.bytes[0], s.bytes[1], s.bytes[2])
	default:
		return -1
	}
	if rel < 0 {
		return -1
	}
	return at + rel
}
