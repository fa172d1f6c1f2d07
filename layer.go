package ink

// Transform computes the color a layer contributes to a cell.
// prev is the color composed so far, t a caller-supplied timestamp, and
// (x, y) the cell position. Transforms must be pure: same inputs, same
// output, no retained state.
type Transform func(prev Color, t int64, x, y int) Color

// Layer is an immutable layer identity: a unique ordinal assigned at
// registration, a display name, and the color transform the layer
// contributes. Layers are created by Catalog.Register and referenced by
// *Layer handle everywhere else; stores never own or copy them.
type Layer struct {
	ordinal int
	name    string
	fn      Transform
}

// Ordinal returns the layer's registration index within its catalog.
func (l *Layer) Ordinal() int { return l.ordinal }

// Name returns the layer's display name.
func (l *Layer) Name() string { return l.name }

// Apply runs the layer's transform on prev.
func (l *Layer) Apply(prev Color, t int64, x, y int) Color {
	return l.fn(prev, t, x, y)
}

// String returns the layer name, for logs and errors.
func (l *Layer) String() string { return l.name }
