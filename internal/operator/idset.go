package operator

import "github.com/google/uuid"

// idSet is an insertion-ordered set of UUIDs: dedup and O(1) membership
// test like a map, but stable iteration order like a slice. No ordered-set
// or ordered-map library appears anywhere in the retrieved example
// repositories (grepped for golang-set, gods, btree, go-set and none
// matched), and a plain map would make the predecessor/successor
// sequences this type backs nondeterministic across runs, which breaks
// the reproducibility the diagnostic string format requires. Hand-rolled
// on the standard library for that reason.
type idSet struct {
	order []uuid.UUID
	index map[uuid.UUID]int
}

func newIDSet() *idSet {
	return &idSet{index: make(map[uuid.UUID]int)}
}

// Add inserts id if not already present. Returns true if it was added.
func (s *idSet) Add(id uuid.UUID) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.order)
	s.order = append(s.order, id)
	return true
}

// Remove deletes id if present, preserving the relative order of the rest.
func (s *idSet) Remove(id uuid.UUID) {
	pos, ok := s.index[id]
	if !ok {
		return
	}
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}
}

// Has reports whether id is a member.
func (s *idSet) Has(id uuid.UUID) bool {
	_, ok := s.index[id]
	return ok
}

// Slice returns the members in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *idSet) Slice() []uuid.UUID {
	out := make([]uuid.UUID, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of members.
func (s *idSet) Len() int {
	return len(s.order)
}
