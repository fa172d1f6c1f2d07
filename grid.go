package ink

import "fmt"

// Brush size bounds. The brush footprint is the Manhattan diamond of
// radius BrushSize around the stamp center.
const (
	MinBrush     = 0
	MaxBrush     = 5
	DefaultBrush = 2
)

// CellRemoval records a layer a destructive special effect removed from
// one cell, with enough context to restore it.
type CellRemoval struct {
	X, Y  int
	Layer *Layer
}

// Grid owns a width×height array of cells, each holding one LayerStore
// of the style chosen at construction, plus the current brush size.
// A Grid is not safe for concurrent use; all mutation is caller-serialized.
type Grid struct {
	cat    *Catalog
	style  DrawStyle
	width  int
	height int
	brush  int
	cells  []LayerStore
}

// NewGrid constructs a grid whose cells all use the given draw style.
// The catalog is frozen by construction: sequence stores size their slot
// tables against it, so it must not grow afterwards.
//
// An unknown style or non-positive dimensions fail immediately.
func NewGrid(cat *Catalog, style DrawStyle, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ink: invalid grid dimensions %dx%d", width, height)
	}
	cat.freeze()

	g := &Grid{
		cat:    cat,
		style:  style,
		width:  width,
		height: height,
		brush:  DefaultBrush,
		cells:  make([]LayerStore, width*height),
	}
	for i := range g.cells {
		store, err := newLayerStore(style, cat)
		if err != nil {
			return nil, err
		}
		g.cells[i] = store
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Style returns the draw style shared by every cell.
func (g *Grid) Style() DrawStyle { return g.style }

// Catalog returns the layer catalog the grid was built against.
func (g *Grid) Catalog() *Catalog { return g.cat }

// BrushSize returns the current Manhattan brush radius.
func (g *Grid) BrushSize() int { return g.brush }

// IncreaseBrushSize grows the brush by one, saturating at MaxBrush.
func (g *Grid) IncreaseBrushSize() {
	if g.brush < MaxBrush {
		g.brush++
	}
}

// DecreaseBrushSize shrinks the brush by one, saturating at MinBrush.
func (g *Grid) DecreaseBrushSize() {
	if g.brush > MinBrush {
		g.brush--
	}
}

// Cell returns the store at (x, y), row-major, or nil when the position
// is out of bounds.
func (g *Grid) Cell(x, y int) LayerStore {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return g.cells[y*g.width+x]
}

// ApplyBrush stamps layer l on every cell within Manhattan distance
// BrushSize of (x, y). Offsets falling outside the grid are skipped
// silently.
func (g *Grid) ApplyBrush(l *Layer, x, y int) {
	for _, op := range g.BrushOperations(l, x, y) {
		g.cells[op.Y*g.width+op.X].Add(op.Layer)
	}
}

// BrushOperations returns the add operations an ApplyBrush(l, x, y) call
// would perform, one per in-bounds cell of the brush footprint, in
// deterministic scan order. Callers use it to build PaintActions that
// record a stroke.
func (g *Grid) BrushOperations(l *Layer, x, y int) []Operation {
	b := g.brush
	ops := make([]Operation, 0, 2*b*(b+1)+1)
	for dx := -b; dx <= b; dx++ {
		for dy := -b; dy <= b; dy++ {
			if abs(dx)+abs(dy) > b {
				continue
			}
			cx, cy := x+dx, y+dy
			if cx < 0 || cx >= g.width || cy < 0 || cy >= g.height {
				continue
			}
			ops = append(ops, Operation{X: cx, Y: cy, Layer: l, Mode: ModeAdd})
		}
	}
	return ops
}

// Special triggers every cell's special effect in row-major order.
// The returned removals record what destructive effects took out, cell
// by cell; for the self-inverse store variants the slice is empty.
func (g *Grid) Special() []CellRemoval {
	var removed []CellRemoval
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if l := g.cells[y*g.width+x].Special(); l != nil {
				removed = append(removed, CellRemoval{X: x, Y: y, Layer: l})
			}
		}
	}
	return removed
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
