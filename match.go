package ahocorasick

// Match is a single pattern occurrence in a haystack.
//
// Offsets are half-open byte offsets into the haystack: the matched bytes are
// haystack[Start:End]. Value is whatever the caller passed to AddWord for the
// matched pattern (nil for AddPattern insertions).
type Match struct {
	Start int
	End   int
	Value any
}

// Len returns the byte length of the matched pattern.
func (m Match) Len() int {
	return m.End - m.Start
}
