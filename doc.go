// Package ink models a grid-based paint surface where each cell
// accumulates named color-transform layers and composes them into a
// final 8-bit RGB color.
//
// # Overview
//
// A Catalog registers the available layers once, up front. A Grid owns
// one LayerStore per cell; the store variant — set, additive, or
// sequence — is chosen at construction and decides how a cell's layers
// combine. Edits are stamped onto the grid with a Manhattan-diamond
// brush and recorded as PaintActions, data-only command records that an
// UndoTracker can invert and a ReplayTracker can play back
// deterministically, undo markers included.
//
// # Quick Start
//
//	cat := ink.NewCatalog()
//	red := cat.Register("red", func(ink.Color, int64, int, int) ink.Color {
//	    return ink.RGB(255, 0, 0)
//	})
//
//	g, err := ink.NewGrid(cat, ink.DrawStyleSet, 32, 32)
//	if err != nil {
//	    // unknown draw style or bad dimensions
//	}
//
//	stroke := ink.NewPaintAction(g.BrushOperations(red, 5, 5), false)
//	stroke.Apply(g)
//
//	undo := ink.NewUndoTracker(0)
//	undo.AddAction(stroke)
//	undo.Undo(g) // stroke gone again
//
// # Architecture
//
// The core is single-threaded by design: one logical actor issues one
// operation at a time against a Grid and its trackers. Every container
// is bounded and saturates instead of growing; overflow silently drops
// the newest entry. Stock transforms live in the layers subpackage; the
// core only ever sees the Transform function type.
package ink
