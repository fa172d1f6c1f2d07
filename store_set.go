package ink

// SetStore holds at most one active layer.
//
//   - Add replaces the active layer.
//   - Erase clears the active layer, whichever layer is passed.
//   - Special toggles inversion of the composed output.
type SetStore struct {
	active   *Layer
	inverted bool
}

// NewSetStore creates an empty set store.
func NewSetStore() *SetStore {
	return &SetStore{}
}

// Add makes l the single active layer, replacing any previous one.
// It always reports changed.
func (s *SetStore) Add(l *Layer) bool {
	s.active = l
	return true
}

// Erase clears the active layer. The layer argument is ignored: a set
// store erases whatever is active. It always reports changed.
func (s *SetStore) Erase(*Layer) bool {
	s.active = nil
	return true
}

// GetColor applies the active layer's transform to start, then the
// inversion toggle. With no active layer, start passes through unchanged.
func (s *SetStore) GetColor(start Color, t int64, x, y int) Color {
	if s.active == nil {
		return start
	}
	c := s.active.Apply(start, t, x, y)
	if s.inverted {
		c = c.Invert()
	}
	return c
}

// Special toggles output inversion. The effect is self-inverse, so it
// returns nil.
func (s *SetStore) Special() *Layer {
	s.inverted = !s.inverted
	return nil
}

// Active returns the currently active layer, or nil.
func (s *SetStore) Active() *Layer { return s.active }

// Inverted reports whether output inversion is on.
func (s *SetStore) Inverted() bool { return s.inverted }

func (s *SetStore) eraseTarget(*Layer) *Layer { return s.active }

func (*SetStore) storeMarker() {}
