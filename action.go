package ink

// Mode says whether an operation activates or erases a layer.
type Mode uint8

const (
	// ModeAdd activates the operation's layer on the target cell.
	ModeAdd Mode = iota
	// ModeErase performs the cell store's erase with the layer as argument.
	ModeErase
)

var modeNames = [...]string{
	ModeAdd:   "add",
	ModeErase: "erase",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Operation is one cell edit inside a PaintAction.
type Operation struct {
	X, Y  int
	Layer *Layer
	Mode  Mode
}

// PaintAction is a data-only command record for one user edit: an ordered
// list of cell operations, optionally followed by a grid-wide special.
//
// Lifecycle: build it, Apply it exactly once, then hand it to an
// UndoTracker or ReplayTracker. Apply captures the snapshots (prior
// values of erases, layers removed by destructive specials) that
// UndoApply later needs; RedoApply replays forward without disturbing
// those snapshots.
type PaintAction struct {
	ops     []Operation
	special bool

	// Captured at apply time.
	erased  []*Layer      // per-operation prior value, nil for adds
	removed []CellRemoval // what a destructive special took out
}

// NewPaintAction builds an action from an ordered operation list. The
// slice is copied. special requests a grid-wide special effect after the
// operations.
func NewPaintAction(ops []Operation, special bool) *PaintAction {
	a := &PaintAction{
		ops:     make([]Operation, len(ops)),
		special: special,
	}
	copy(a.ops, ops)
	return a
}

// Operations returns a copy of the action's operation list.
func (a *PaintAction) Operations() []Operation {
	out := make([]Operation, len(a.ops))
	copy(out, a.ops)
	return out
}

// IsSpecial reports whether the action triggers a grid-wide special.
func (a *PaintAction) IsSpecial() bool { return a.special }

// Apply performs the forward edit and captures the state needed to
// invert it. Call it exactly once, at the time the edit happens.
func (a *PaintAction) Apply(g *Grid) {
	a.run(g, true)
}

// RedoApply re-performs the forward edit without re-capturing snapshots,
// so an undo after a redo still restores the original prior values.
func (a *PaintAction) RedoApply(g *Grid) {
	a.run(g, false)
}

func (a *PaintAction) run(g *Grid, capture bool) {
	if capture {
		a.erased = make([]*Layer, len(a.ops))
	}
	for i, op := range a.ops {
		store := g.Cell(op.X, op.Y)
		if store == nil {
			continue
		}
		switch op.Mode {
		case ModeAdd:
			store.Add(op.Layer)
		case ModeErase:
			if capture {
				a.erased[i] = store.eraseTarget(op.Layer)
			}
			store.Erase(op.Layer)
		}
	}
	if a.special {
		removed := g.Special()
		if capture {
			a.removed = removed
		}
	}
}

// UndoApply performs the exact inverse of Apply: the special effect is
// inverted first, then the operations are walked in reverse order. Adds
// are inverted by erases; erases re-add the prior value captured at
// apply time (nothing is re-added when the erase removed nothing).
func (a *PaintAction) UndoApply(g *Grid) {
	if a.special {
		if len(a.removed) > 0 {
			// Destructive special: restore each removed layer in place.
			for _, r := range a.removed {
				if store := g.Cell(r.X, r.Y); store != nil {
					store.Add(r.Layer)
				}
			}
		} else {
			// Self-inverse special: invoking it again undoes it.
			g.Special()
		}
	}
	for i := len(a.ops) - 1; i >= 0; i-- {
		op := a.ops[i]
		store := g.Cell(op.X, op.Y)
		if store == nil {
			continue
		}
		switch op.Mode {
		case ModeAdd:
			store.Erase(op.Layer)
		case ModeErase:
			if i < len(a.erased) && a.erased[i] != nil {
				store.Add(a.erased[i])
			}
		}
	}
}
