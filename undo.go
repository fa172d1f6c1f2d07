package ink

import "github.com/inkgrid/ink/internal/ring"

// DefaultUndoCapacity is the history depth an UndoTracker keeps when
// constructed with a non-positive capacity.
const DefaultUndoCapacity = 1000

// UndoTracker is a bounded two-stack edit history over PaintActions.
//
// Undo deliberately does not feed the redo stack: the popped action is
// returned to the caller, who decides whether to stage it for redo via
// PushRedo. Likewise AddAction never clears pending redos; history is
// only ever truncated by capacity. Both policies keep recorded histories
// replayable without hidden state changes.
type UndoTracker struct {
	undo *ring.Stack[*PaintAction]
	redo *ring.Stack[*PaintAction]
}

// NewUndoTracker creates a tracker holding at most capacity actions per
// stack. A non-positive capacity selects DefaultUndoCapacity.
func NewUndoTracker(capacity int) *UndoTracker {
	if capacity <= 0 {
		capacity = DefaultUndoCapacity
	}
	return &UndoTracker{
		undo: ring.NewStack[*PaintAction](capacity),
		redo: ring.NewStack[*PaintAction](capacity),
	}
}

// AddAction records an applied action. When the history is at capacity
// the action is silently dropped; this is the documented lossy policy,
// not an error.
func (u *UndoTracker) AddAction(a *PaintAction) {
	if !u.undo.Push(a) {
		Logger().Debug("undo history full, action dropped", "capacity", u.undo.Cap())
	}
}

// Undo pops the most recent action, applies its inverse to the grid, and
// returns it. It returns nil when there is nothing to undo. The popped
// action is not staged for redo; see PushRedo.
func (u *UndoTracker) Undo(g *Grid) *PaintAction {
	a, ok := u.undo.Pop()
	if !ok {
		return nil
	}
	a.UndoApply(g)
	return a
}

// PushRedo stages an undone action for redo. It reports false when the
// redo stack is at capacity and the action was dropped.
func (u *UndoTracker) PushRedo(a *PaintAction) bool {
	return u.redo.Push(a)
}

// Redo pops the most recent staged action, re-applies it forward, pushes
// it back onto the undo history, and returns it. It returns nil when
// there is nothing to redo.
func (u *UndoTracker) Redo(g *Grid) *PaintAction {
	a, ok := u.redo.Pop()
	if !ok {
		return nil
	}
	a.RedoApply(g)
	u.undo.Push(a)
	return a
}

// UndoLen returns the number of undoable actions.
func (u *UndoTracker) UndoLen() int { return u.undo.Len() }

// RedoLen returns the number of staged redo actions.
func (u *UndoTracker) RedoLen() int { return u.redo.Len() }
