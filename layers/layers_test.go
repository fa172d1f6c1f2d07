package layers

import (
	"testing"

	"github.com/inkgrid/ink"
)

func TestSolidIgnoresInput(t *testing.T) {
	fn := Solid(ink.RGB(10, 20, 30))
	for _, prev := range []ink.Color{{}, {R: 255, G: 255, B: 255}, {R: 1, G: 2, B: 3}} {
		if got := fn(prev, 99, 4, 5); got != ink.RGB(10, 20, 30) {
			t.Errorf("Solid(%v) = %v, want {10 20 30}", prev, got)
		}
	}
}

func TestNamed(t *testing.T) {
	fn, err := Named("red")
	if err != nil {
		t.Fatalf("Named(red) error: %v", err)
	}
	if got := fn(ink.Color{}, 0, 0, 0); got != ink.RGB(255, 0, 0) {
		t.Errorf("Named(red) paints %v, want {255 0 0}", got)
	}

	if _, err := Named("not-a-color"); err == nil {
		t.Error("Named(not-a-color) did not error")
	}
}

func TestLightenDarken(t *testing.T) {
	tests := []struct {
		name string
		fn   ink.Transform
		in   ink.Color
		want ink.Color
	}{
		{"lighten", Lighten(40), ink.RGB(10, 250, 0), ink.RGB(50, 255, 40)},
		{"darken", Darken(40), ink.RGB(10, 250, 0), ink.RGB(0, 210, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in, 0, 0, 0); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	if got := Invert(ink.RGB(0, 128, 255), 0, 0, 0); got != ink.RGB(255, 127, 0) {
		t.Errorf("Invert = %v, want {255 127 0}", got)
	}
}

func TestBlendWeights(t *testing.T) {
	target := ink.RGB(200, 100, 0)
	in := ink.RGB(0, 0, 0)

	if got := Blend(target, 0)(in, 0, 0, 0); got != in {
		t.Errorf("Blend(0) = %v, want the incoming color", got)
	}
	if got := Blend(target, 1)(in, 0, 0, 0); got != target {
		t.Errorf("Blend(1) = %v, want the target color", got)
	}
}

func TestRainbowDeterministic(t *testing.T) {
	a := Rainbow(ink.Color{}, 42, 3, 4)
	b := Rainbow(ink.RGB(9, 9, 9), 42, 3, 4)
	if a != b {
		t.Errorf("Rainbow depends on the incoming color: %v vs %v", a, b)
	}

	later := Rainbow(ink.Color{}, 420, 3, 4)
	if a == later {
		t.Error("Rainbow does not vary with the timestamp")
	}
}

func TestStock(t *testing.T) {
	cat := StockCatalog()

	want := []string{"black", "white", "lighten", "darken", "invert", "rainbow"}
	if cat.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", cat.Len(), len(want))
	}
	for _, name := range want {
		if _, ok := cat.ByName(name); !ok {
			t.Errorf("stock catalog missing %q", name)
		}
	}

	black, _ := cat.ByName("black")
	if got := black.Apply(ink.RGB(200, 200, 200), 0, 0, 0); got != ink.RGB(0, 0, 0) {
		t.Errorf("black paints %v, want {0 0 0}", got)
	}
}

func TestNamesSortedNonEmpty(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("Names() is empty")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not strictly sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
