package ink

import "github.com/inkgrid/ink/internal/ring"

// AdditiveCapacity bounds the number of layers one additive cell can
// hold. Inserts beyond it are rejected, never grown past.
const AdditiveCapacity = 2000

// AdditiveStore holds a bounded, insertion-ordered sequence of layers.
// Composition order is insertion order.
//
//   - Add appends at the tail.
//   - Erase removes the head (oldest), whichever layer is passed.
//   - Special reverses the stored order.
type AdditiveStore struct {
	layers *ring.Queue[*Layer]
}

// NewAdditiveStore creates an empty additive store with AdditiveCapacity.
func NewAdditiveStore() *AdditiveStore {
	return &AdditiveStore{layers: ring.NewQueue[*Layer](AdditiveCapacity)}
}

// Add appends l after all previously added layers. It reports changed
// unless the store is at capacity, in which case the insert is silently
// rejected.
func (s *AdditiveStore) Add(l *Layer) bool {
	if !s.layers.Enqueue(l) {
		Logger().Debug("additive store full, layer dropped", "layer", l.Name())
		return false
	}
	return true
}

// Erase removes the oldest inserted layer. The layer argument is
// ignored. Erasing an empty store is a no-op and reports not-changed.
func (s *AdditiveStore) Erase(*Layer) bool {
	_, ok := s.layers.Dequeue()
	return ok
}

// GetColor folds the stored layers over start in insertion order.
// The stored order is identical before and after the call.
func (s *AdditiveStore) GetColor(start Color, t int64, x, y int) Color {
	c := start
	for i := 0; i < s.layers.Len(); i++ {
		c = s.layers.At(i).Apply(c, t, x, y)
	}
	return c
}

// Special reverses the stored order in place: the head becomes the tail.
// Reversal is self-inverse, so it returns nil.
func (s *AdditiveStore) Special() *Layer {
	s.layers.Reverse()
	return nil
}

// Len returns the number of stored layers.
func (s *AdditiveStore) Len() int { return s.layers.Len() }

func (s *AdditiveStore) eraseTarget(*Layer) *Layer {
	if s.layers.Len() == 0 {
		return nil
	}
	return s.layers.At(0)
}

func (*AdditiveStore) storeMarker() {}
