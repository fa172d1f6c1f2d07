package ink

// Shared test fixtures. The transforms are deliberately non-commutative
// where composition order matters: a solid paint followed by a channel
// shift composes differently than the reverse.

// testSolid paints a fixed color, ignoring the incoming one.
func testSolid(c Color) Transform {
	return func(Color, int64, int, int) Color { return c }
}

// testShiftR adds n to the red channel, saturating.
func testShiftR(n uint8) Transform {
	return func(prev Color, _ int64, _, _ int) Color {
		return Color{R: satAdd(prev.R, n), G: prev.G, B: prev.B}
	}
}

// newTestCatalog registers one solid red layer per name, with the red
// channel equal to 10*(ordinal+1) so colors identify layers.
func newTestCatalog(names ...string) *Catalog {
	cat := NewCatalog()
	for i, name := range names {
		cat.Register(name, testSolid(RGB(uint8(10*(i+1)), 0, 0)))
	}
	return cat
}

// mustGrid builds a grid or fails the test setup by panicking; test
// constructors only feed it valid configurations.
func mustGrid(cat *Catalog, style DrawStyle, w, h int) *Grid {
	g, err := NewGrid(cat, style, w, h)
	if err != nil {
		panic(err)
	}
	return g
}
