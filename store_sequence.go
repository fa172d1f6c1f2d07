package ink

import "sort"

// SequenceStore keeps one applied flag per catalog layer, composing the
// applied ones in ascending ordinal order.
//
//   - Add marks the layer applied.
//   - Erase marks the layer not applied.
//   - Special removes the applied layer with the median name.
type SequenceStore struct {
	cat     *Catalog
	applied []bool
}

// NewSequenceStore creates a sequence store sized to the catalog: exactly
// one slot per registered layer. The catalog must not grow afterwards;
// Grid construction freezes it.
func NewSequenceStore(cat *Catalog) *SequenceStore {
	return &SequenceStore{
		cat:     cat,
		applied: make([]bool, cat.Len()),
	}
}

// Add marks l's slot applied. Per edit-history semantics it reports
// changed even when the slot was already applied. Layers from a foreign
// catalog are rejected.
func (s *SequenceStore) Add(l *Layer) bool {
	if l == nil || l.ordinal >= len(s.applied) || s.cat.Layer(l.ordinal) != l {
		return false
	}
	s.applied[l.ordinal] = true
	return true
}

// Erase marks l's slot not applied, reporting changed even when the slot
// was already clear.
func (s *SequenceStore) Erase(l *Layer) bool {
	if l == nil || l.ordinal >= len(s.applied) || s.cat.Layer(l.ordinal) != l {
		return false
	}
	s.applied[l.ordinal] = false
	return true
}

// GetColor chains the applied layers' transforms onto start in ascending
// ordinal order, skipping non-applied slots.
func (s *SequenceStore) GetColor(start Color, t int64, x, y int) Color {
	c := start
	for ord, on := range s.applied {
		if on {
			c = s.cat.Layer(ord).Apply(c, t, x, y)
		}
	}
	return c
}

// Special removes the applied layer whose name is the median of all
// applied layer names in lexicographic order; for an even count, the
// smaller of the two central names. The removed layer is returned so the
// effect can be inverted; with no applied layers, Special is a no-op and
// returns nil.
func (s *SequenceStore) Special() *Layer {
	var names []string
	for ord, on := range s.applied {
		if on {
			names = append(names, s.cat.Layer(ord).Name())
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	// Exact middle for odd counts, lower-central for even counts.
	median := names[(len(names)-1)/2]

	for ord, on := range s.applied {
		if on && s.cat.Layer(ord).Name() == median {
			s.applied[ord] = false
			return s.cat.Layer(ord)
		}
	}
	return nil
}

// Applied reports whether l's slot is currently applied.
func (s *SequenceStore) Applied(l *Layer) bool {
	if l == nil || l.ordinal >= len(s.applied) {
		return false
	}
	return s.applied[l.ordinal]
}

func (s *SequenceStore) eraseTarget(l *Layer) *Layer {
	if s.Applied(l) {
		return l
	}
	return nil
}

func (*SequenceStore) storeMarker() {}
