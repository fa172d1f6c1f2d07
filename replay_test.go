package ink

import "testing"

// TestReplayTrackerPlayback records draw A, draw B, then an undo marker
// for B, and checks that playback applies A, applies B, undoes B, and
// then reports exhaustion.
func TestReplayTrackerPlayback(t *testing.T) {
	cat := NewCatalog()
	la := cat.Register("a", testSolid(RGB(10, 0, 0)))
	lb := cat.Register("b", testSolid(RGB(20, 0, 0)))

	live := mustGrid(cat, DrawStyleSet, 1, 1)
	stage := mustGrid(cat, DrawStyleSet, 1, 1)

	r := NewReplayTracker(0)

	drawA := NewPaintAction([]Operation{{X: 0, Y: 0, Layer: la, Mode: ModeAdd}}, false)
	drawA.Apply(live)
	r.AddAction(drawA, false)

	drawB := NewPaintAction([]Operation{{X: 0, Y: 0, Layer: lb, Mode: ModeAdd}}, false)
	drawB.Apply(live)
	r.AddAction(drawB, false)

	// Live undo of B, recorded as a marker.
	undone := r.Undo(live)
	if undone != drawB {
		t.Fatalf("Undo() = %v, want draw B", undone)
	}
	r.AddAction(undone, true)

	r.StartReplay()

	if exhausted := r.PlayNextAction(stage); exhausted {
		t.Fatal("step 1 reported exhausted")
	}
	if got := stage.Cell(0, 0).(*SetStore).Active(); got != la {
		t.Errorf("after step 1 active = %v, want layer a", got)
	}

	if exhausted := r.PlayNextAction(stage); exhausted {
		t.Fatal("step 2 reported exhausted")
	}
	if got := stage.Cell(0, 0).(*SetStore).Active(); got != lb {
		t.Errorf("after step 2 active = %v, want layer b", got)
	}

	if exhausted := r.PlayNextAction(stage); exhausted {
		t.Fatal("step 3 reported exhausted")
	}
	if got := stage.Cell(0, 0).(*SetStore).Active(); got != nil {
		t.Errorf("after undo marker active = %v, want nil", got)
	}

	if exhausted := r.PlayNextAction(stage); !exhausted {
		t.Error("step 4 did not report exhausted")
	}
}

// TestReplayTrackerExhaustionFlags checks the return-value contract: a
// special, a draw, and an undo marker yield three false returns and then
// a true.
func TestReplayTrackerExhaustionFlags(t *testing.T) {
	cat := newTestCatalog("alpha")
	g := mustGrid(cat, DrawStyleSet, 5, 5)

	special := NewPaintAction(nil, true)
	special.Apply(g)
	draw := NewPaintAction(nil, false)
	draw.Apply(g)

	r := NewReplayTracker(0)
	r.AddAction(special, false)
	r.AddAction(draw, false)
	r.AddAction(draw, true)
	r.StartReplay()

	got := []bool{
		r.PlayNextAction(g),
		r.PlayNextAction(g),
		r.PlayNextAction(g),
		r.PlayNextAction(g),
	}
	want := []bool{false, false, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PlayNextAction #%d = %v, want %v", i+1, got[i], want[i])
		}
	}
}

func TestReplayTrackerLiveUndo(t *testing.T) {
	cat := NewCatalog()
	red := cat.Register("red", testSolid(RGB(200, 0, 0)))
	g := mustGrid(cat, DrawStyleSet, 1, 1)

	r := NewReplayTracker(0)
	if a := r.Undo(g); a != nil {
		t.Errorf("Undo() with nothing recorded = %v, want nil", a)
	}

	a := NewPaintAction([]Operation{{X: 0, Y: 0, Layer: red, Mode: ModeAdd}}, false)
	a.Apply(g)
	r.AddAction(a, false)

	if got := r.Undo(g); got != a {
		t.Fatalf("Undo() = %v, want the recorded action", got)
	}
	if g.Cell(0, 0).(*SetStore).Active() != nil {
		t.Error("live undo did not revert the grid")
	}
}

func TestReplayTrackerRejectsRecordingDuringPlayback(t *testing.T) {
	r := NewReplayTracker(0)
	r.AddAction(NewPaintAction(nil, false), false)
	r.StartReplay()

	r.AddAction(NewPaintAction(nil, false), false)
	if r.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1 (recording after StartReplay ignored)", r.Remaining())
	}
}

func TestReplayTrackerCapacityDropsNewest(t *testing.T) {
	r := NewReplayTracker(2)
	for i := 0; i < 3; i++ {
		r.AddAction(NewPaintAction(nil, false), false)
	}
	if r.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want capacity 2", r.Remaining())
	}
}
