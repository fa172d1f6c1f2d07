// Package layers provides stock color transforms and palette helpers for
// the ink paint core.
//
// The core only ever sees the ink.Transform function type; everything
// here is an ordinary collaborator that could equally live in caller
// code. Transforms are pure functions of (prev, t, x, y), so recorded
// sessions replay identically.
package layers

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/image/colornames"

	"github.com/inkgrid/ink"
)

// Solid returns a transform that ignores the incoming color and paints a
// fixed color.
func Solid(c ink.Color) ink.Transform {
	return func(ink.Color, int64, int, int) ink.Color {
		return c
	}
}

// Named returns a solid transform for an SVG 1.1 color name ("skyblue",
// "crimson", ...). Unknown names are an error.
func Named(name string) (ink.Transform, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return nil, fmt.Errorf("layers: unknown color name %q", name)
	}
	return Solid(ink.FromColor(c)), nil
}

// Lighten returns a transform that adds n to every channel, saturating
// at 255.
func Lighten(n uint8) ink.Transform {
	return func(prev ink.Color, _ int64, _, _ int) ink.Color {
		return prev.Lighter(n)
	}
}

// Darken returns a transform that subtracts n from every channel,
// saturating at 0.
func Darken(n uint8) ink.Transform {
	return func(prev ink.Color, _ int64, _, _ int) ink.Color {
		return prev.Darker(n)
	}
}

// Invert flips every channel to its 255-complement.
func Invert(prev ink.Color, _ int64, _, _ int) ink.Color {
	return prev.Invert()
}

// Blend returns a transform that moves the incoming color toward c by
// weight, where 0 keeps the incoming color and 1 paints c outright.
func Blend(c ink.Color, weight float64) ink.Transform {
	return func(prev ink.Color, _ int64, _, _ int) ink.Color {
		return prev.Lerp(c, weight)
	}
}

// Rainbow cycles hue with the timestamp and cell position. It ignores
// the incoming color but is fully deterministic, so replays repaint the
// same rainbow.
func Rainbow(_ ink.Color, t int64, x, y int) ink.Color {
	phase := float64(t)/8 + float64(x+y)/5
	channel := func(offset float64) uint8 {
		return uint8((math.Sin(phase+offset) + 1) / 2 * 255)
	}
	return ink.RGB(
		channel(0),
		channel(2*math.Pi/3),
		channel(4*math.Pi/3),
	)
}

// Stock registers the standard layer roster into cat: black, white,
// lighten, darken, invert, and rainbow. It returns cat for chaining.
func Stock(cat *ink.Catalog) *ink.Catalog {
	cat.Register("black", Solid(ink.RGB(0, 0, 0)))
	cat.Register("white", Solid(ink.RGB(255, 255, 255)))
	cat.Register("lighten", Lighten(40))
	cat.Register("darken", Darken(40))
	cat.Register("invert", ink.Transform(Invert))
	cat.Register("rainbow", ink.Transform(Rainbow))
	return cat
}

// StockCatalog builds a fresh catalog pre-populated with the stock
// roster.
func StockCatalog() *ink.Catalog {
	return Stock(ink.NewCatalog())
}

// Names returns the sorted SVG color names Named accepts. Useful for
// CLI help and palette validation messages.
func Names() []string {
	out := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
