package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inkgrid/ink"
	"github.com/inkgrid/ink/layers"
)

// paletteFile is the YAML shape of a palette definition:
//
//	layers:
//	  - name: sky
//	    kind: solid
//	    color: skyblue        # SVG name or "#rrggbb"
//	  - name: glow
//	    kind: lighten
//	    amount: 40
//	  - name: wash
//	    kind: blend
//	    color: "#ff2d55"
//	    weight: 0.5
//	  - name: negative
//	    kind: invert
//	  - name: prism
//	    kind: rainbow
type paletteFile struct {
	Layers []paletteEntry `yaml:"layers"`
}

type paletteEntry struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Color  string  `yaml:"color"`
	Amount uint8   `yaml:"amount"`
	Weight float64 `yaml:"weight"`
}

// loadPalette reads a YAML palette file and registers its layers into a
// fresh catalog, in file order.
func loadPalette(path string) (*ink.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	var pf paletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	if len(pf.Layers) == 0 {
		return nil, fmt.Errorf("palette %s: no layers defined", path)
	}

	cat := ink.NewCatalog()
	for i, e := range pf.Layers {
		if e.Name == "" {
			return nil, fmt.Errorf("palette %s: layer %d has no name", path, i)
		}
		fn, err := e.transform()
		if err != nil {
			return nil, fmt.Errorf("palette %s: layer %q: %w", path, e.Name, err)
		}
		cat.Register(e.Name, fn)
	}
	return cat, nil
}

func (e paletteEntry) transform() (ink.Transform, error) {
	switch strings.ToLower(e.Kind) {
	case "solid":
		c, err := e.parseColor()
		if err != nil {
			return nil, err
		}
		return layers.Solid(c), nil
	case "lighten":
		return layers.Lighten(e.Amount), nil
	case "darken":
		return layers.Darken(e.Amount), nil
	case "invert":
		return ink.Transform(layers.Invert), nil
	case "rainbow":
		return ink.Transform(layers.Rainbow), nil
	case "blend":
		c, err := e.parseColor()
		if err != nil {
			return nil, err
		}
		return layers.Blend(c, e.Weight), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", e.Kind)
	}
}

func (e paletteEntry) parseColor() (ink.Color, error) {
	if e.Color == "" {
		return ink.Color{}, fmt.Errorf("kind %q needs a color", e.Kind)
	}
	if strings.HasPrefix(e.Color, "#") {
		return ink.Hex(e.Color), nil
	}
	fn, err := layers.Named(e.Color)
	if err != nil {
		return ink.Color{}, err
	}
	return fn(ink.Color{}, 0, 0, 0), nil
}
