package domain

// MultiBiMap is a bidirectional, insertion-ordered multimap: each key owns an ordered,
// duplicate-free list of values, and each value belongs to exactly one key. Groups are
// exactly this shape (one Terminal owns many member Tasks, each Task belongs to exactly
// one Terminal's group) so GroupAround returns one directly rather than a bespoke type.
// See Design Notes §9.
type MultiBiMap[K comparable, V comparable] struct {
	keys       []K
	forward    map[K][]V
	memberOf   map[V]K
	haveMember map[V]bool
}

// NewMultiBiMap constructs an empty MultiBiMap.
func NewMultiBiMap[K comparable, V comparable]() *MultiBiMap[K, V] {
	return &MultiBiMap[K, V]{
		forward:    make(map[K][]V),
		memberOf:   make(map[V]K),
		haveMember: make(map[V]bool),
	}
}

// Put appends v to k's value list. v must not already belong to any key; callers that
// violate this (assigning the same task to two groups) have a planner bug, so Put panics
// rather than silently corrupting the index.
func (m *MultiBiMap[K, V]) Put(k K, v V) {
	if m.haveMember[v] {
		panic("domain: MultiBiMap value already belongs to a key")
	}
	if _, seen := m.forward[k]; !seen {
		m.keys = append(m.keys, k)
	}
	m.forward[k] = append(m.forward[k], v)
	m.memberOf[v] = k
	m.haveMember[v] = true
}

// Keys returns keys in first-insertion order.
func (m *MultiBiMap[K, V]) Keys() []K {
	return m.keys
}

// Get returns k's ordered value list, or nil if k is absent.
func (m *MultiBiMap[K, V]) Get(k K) []V {
	return m.forward[k]
}

// KeyOf returns the key v belongs to, if any.
func (m *MultiBiMap[K, V]) KeyOf(v V) (K, bool) {
	k, ok := m.memberOf[v]
	return k, ok
}

// Len returns the number of keys.
func (m *MultiBiMap[K, V]) Len() int {
	return len(m.keys)
}
