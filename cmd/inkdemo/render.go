package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/inkgrid/ink"
)

// background is the canvas color fed into every cell's composition.
var background = ink.RGB(24, 24, 24)

// renderGrid writes the composed grid to w, one two-column colored block
// per cell, using the terminal's best available color profile.
func renderGrid(w io.Writer, g *ink.Grid, t int64) {
	p := termenv.ColorProfile()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.Cell(x, y).GetColor(background, t, x, y)
			fmt.Fprint(w, termenv.String("  ").Background(p.Color(c.String())))
		}
		fmt.Fprintln(w)
	}
}

// banner prints a phase heading.
func banner(w io.Writer, format string, args ...any) {
	p := termenv.ColorProfile()
	s := termenv.String(fmt.Sprintf(format, args...)).
		Foreground(p.Color("#a78bfa")).
		Bold()
	fmt.Fprintf(w, "\n%s\n", s)
}
