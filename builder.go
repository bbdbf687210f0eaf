package ahocorasick

// Builder accumulates patterns and constructs an Automaton.
//
// A Builder is single-writer: AddWord, AddString, AddPattern and Build must
// not be called concurrently with each other. After Build succeeds the
// builder is spent; further mutation attempts fail with ErrAlreadyBuilt.
//
// Example:
//
//	builder := ahocorasick.NewBuilder()
//	builder.AddWord([]byte("error"), severityHigh)
//	builder.AddWord([]byte("warn"), severityLow)
//	auto, err := builder.Build()
type Builder struct {
	nodes    []node
	patterns []pattern

	maxPatternLen int
	built         bool
}

// NewBuilder creates a new builder with default capacity.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(256, 64)
}

// NewBuilderWithCapacity creates a new builder with room for nodeCapacity
// states and patternCapacity patterns before the arenas grow. Both grow by
// amortized doubling as needed, so the capacities are hints, not limits.
func NewBuilderWithCapacity(nodeCapacity, patternCapacity int) *Builder {
	if nodeCapacity < 1 {
		nodeCapacity = 1
	}
	b := &Builder{
		nodes:    make([]node, 0, nodeCapacity),
		patterns: make([]pattern, 0, patternCapacity),
	}
	b.newNode() // root, nodeID 0
	return b
}

// newNode appends a fresh state with an empty child table and returns its id.
func (b *Builder) newNode() nodeID {
	id := nodeID(len(b.nodes))
	b.nodes = append(b.nodes, node{})
	n := &b.nodes[id]
	for c := range n.children {
		n.children[c] = noNode
	}
	n.fail = rootID
	n.output = noOutput
	n.dictSuffix = noNode
	return id
}

// AddWord inserts a pattern with an associated value.
//
// The value is opaque: it is never inspected, only stored and returned in
// matches. Inserting the same key twice overwrites the earlier entry's
// output — the last value wins and the earlier one is never reported again.
//
// Returns ErrEmptyPattern for a zero-length key and ErrAlreadyBuilt after
// Build has succeeded; in both cases the builder is unchanged. The key slice
// is not retained and may be reused by the caller.
func (b *Builder) AddWord(key []byte, value any) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if len(key) == 0 {
		return ErrEmptyPattern
	}

	cur := rootID
	for _, c := range key {
		next := b.nodes[cur].children[c]
		if next == noNode {
			next = b.newNode()
			b.nodes[cur].children[c] = next
		}
		cur = next
	}

	id := int32(len(b.patterns))
	b.patterns = append(b.patterns, pattern{value: value, len: len(key)})
	b.nodes[cur].output = id

	if len(key) > b.maxPatternLen {
		b.maxPatternLen = len(key)
	}
	return nil
}

// AddString inserts a string pattern with an associated value.
func (b *Builder) AddString(key string, value any) error {
	return b.AddWord([]byte(key), value)
}

// AddPattern inserts a pattern with no associated value. Matches for it
// carry a nil Value; callers that only need positions (literal prefilters,
// alternation engines) use this form.
func (b *Builder) AddPattern(key []byte) error {
	return b.AddWord(key, nil)
}

// Build computes the failure and dict-suffix links and freezes the builder
// into an immutable Automaton.
//
// Build may be called exactly once; a second call fails with ErrAlreadyBuilt
// and the automaton from the first call remains valid. Building an empty
// builder is allowed and yields an automaton that matches nothing.
//
// The construction is a breadth-first traversal of the trie. For each state
// v reached from u on byte c, the failure link is found by chasing u's
// failure chain until a state with a c-child appears (or the root is hit);
// the dict-suffix link is then fail(v) itself if a pattern ends there, or
// fail(v)'s own dict-suffix otherwise. Total cost is O(total pattern bytes).
func (b *Builder) Build() (*Automaton, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}

	nodes := b.nodes
	queue := make([]nodeID, 0, len(nodes))

	// Depth-1 states cannot have a non-trivial failure link.
	root := &nodes[rootID]
	for c := 0; c < 256; c++ {
		child := root.children[c]
		if child != noNode {
			nodes[child].fail = rootID
			nodes[child].dictSuffix = noNode
			queue = append(queue, child)
		}
	}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for c := 0; c < 256; c++ {
			v := nodes[u].children[c]
			if v == noNode {
				continue
			}

			f := nodes[u].fail
			for f != rootID && nodes[f].children[c] == noNode {
				f = nodes[f].fail
			}
			if next := nodes[f].children[c]; next != noNode && next != v {
				f = next
			}
			nodes[v].fail = f

			if nodes[f].output != noOutput {
				nodes[v].dictSuffix = f
			} else {
				nodes[v].dictSuffix = nodes[f].dictSuffix
			}

			queue = append(queue, v)
		}
	}

	b.built = true
	return &Automaton{
		nodes:         nodes,
		patterns:      b.patterns,
		skip:          newStartByteSkip(root),
		maxPatternLen: b.maxPatternLen,
	}, nil
}
