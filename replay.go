package ink

import "github.com/inkgrid/ink/internal/ring"

// DefaultReplayCapacity is the log depth a ReplayTracker keeps when
// constructed with a non-positive capacity.
const DefaultReplayCapacity = 10000

// replayEntry is one log slot: a forward action, or the same action
// wrapped as an undo marker that plays back as an undo.
type replayEntry struct {
	action *PaintAction
	undo   bool
}

// ReplayTracker records applied actions in order for deterministic
// playback. Undo edits are recorded as markers: on playback they invert
// their action instead of re-applying it. The tracker also owns an
// UndoTracker so a session being recorded still supports live undo.
type ReplayTracker struct {
	log       *ring.Queue[replayEntry]
	undo      *UndoTracker
	replaying bool
}

// NewReplayTracker creates a tracker whose log holds at most capacity
// entries. A non-positive capacity selects DefaultReplayCapacity.
func NewReplayTracker(capacity int) *ReplayTracker {
	if capacity <= 0 {
		capacity = DefaultReplayCapacity
	}
	return &ReplayTracker{
		log:  ring.NewQueue[replayEntry](capacity),
		undo: NewUndoTracker(capacity),
	}
}

// AddAction records an applied action. With isUndo false the action is
// logged for forward playback; with isUndo true it is logged as an undo
// marker. Either way the action is registered with the internal undo
// tracker first, so live Undo keeps working while recording.
//
// A full log silently drops the newest entry. Recording after
// StartReplay is rejected.
func (r *ReplayTracker) AddAction(a *PaintAction, isUndo bool) {
	if r.replaying {
		Logger().Warn("action recorded after StartReplay, ignored")
		return
	}
	r.undo.AddAction(a)
	if !r.log.Enqueue(replayEntry{action: a, undo: isUndo}) {
		Logger().Debug("replay log full, entry dropped", "capacity", r.log.Cap())
	}
}

// StartReplay marks the transition from recording to playback. It
// carries no state change beyond rejecting further recording; call it
// once the session to replay is complete.
func (r *ReplayTracker) StartReplay() {
	r.replaying = true
}

// Replaying reports whether StartReplay has been called.
func (r *ReplayTracker) Replaying() bool { return r.replaying }

// PlayNextAction consumes exactly one log entry and plays it against the
// grid: forward entries re-apply their action, undo markers invert
// theirs. It returns true when the log was already exhausted and nothing
// happened, false otherwise.
func (r *ReplayTracker) PlayNextAction(g *Grid) bool {
	e, ok := r.log.Dequeue()
	if !ok {
		return true
	}
	if e.undo {
		e.action.UndoApply(g)
	} else {
		e.action.RedoApply(g)
	}
	return false
}

// Remaining returns the number of log entries not yet played.
func (r *ReplayTracker) Remaining() int { return r.log.Len() }

// Undo delegates to the internal undo tracker, inverting the most
// recently recorded action. It returns nil when there is nothing to
// undo.
func (r *ReplayTracker) Undo(g *Grid) *PaintAction {
	return r.undo.Undo(g)
}
