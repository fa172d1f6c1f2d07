package main

import (
	"fmt"

	"github.com/inkgrid/ink"
)

// sessionStep is one applied edit of the scripted demo session.
type sessionStep struct {
	label  string
	action *ink.PaintAction
}

// buildSession scripts a short painting session: three brush strokes at
// varying brush sizes, a two-cell erase, and a grid-wide special. Each
// action is applied to g as it is built, exactly once, the way a live
// driver would. Callers record the returned steps into their tracker of
// choice.
func buildSession(g *ink.Grid) []sessionStep {
	all := g.Catalog().Layers()
	pick := func(i int) *ink.Layer { return all[i%len(all)] }

	cx, cy := g.Width()/2, g.Height()/2

	var steps []sessionStep
	apply := func(label string, a *ink.PaintAction) {
		a.Apply(g)
		steps = append(steps, sessionStep{label: label, action: a})
	}
	stroke := func(l *ink.Layer, x, y int) {
		a := ink.NewPaintAction(g.BrushOperations(l, x, y), false)
		apply(fmt.Sprintf("stroke %q at (%d,%d), brush %d", l.Name(), x, y, g.BrushSize()), a)
	}

	stroke(pick(0), cx/2, cy)

	g.IncreaseBrushSize()
	stroke(pick(1), cx, cy)

	g.DecreaseBrushSize()
	stroke(pick(2), cx+cx/2, cy)

	// Scrub a small patch with erases.
	apply("erase two cells", ink.NewPaintAction([]ink.Operation{
		{X: cx, Y: cy, Layer: pick(1), Mode: ink.ModeErase},
		{X: cx + 1, Y: cy, Layer: pick(1), Mode: ink.ModeErase},
	}, false))

	apply("special sweep", ink.NewPaintAction(nil, true))

	return steps
}
