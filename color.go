package ink

import "image/color"

// Color is an opaque 8-bit RGB triple, the only color representation the
// paint core works in. Channel arithmetic saturates at the [0, 255] bounds.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts a standard color.Color to an opaque Color,
// discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBA implements the color.Color interface. The alpha channel is always
// fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with optional '#' prefix.
// Malformed input yields black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Color{}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// String returns the color as a "#rrggbb" hex string.
func (c Color) String() string {
	const digits = "0123456789abcdef"
	buf := [7]byte{'#'}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		buf[1+2*i] = digits[v>>4]
		buf[2+2*i] = digits[v&0xf]
	}
	return string(buf[:])
}

// Invert returns the channel-wise 255-complement.
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Add returns the channel-wise saturating sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{
		R: satAdd(c.R, o.R),
		G: satAdd(c.G, o.G),
		B: satAdd(c.B, o.B),
	}
}

// Lighter returns the color with n added to every channel, saturating
// at 255.
func (c Color) Lighter(n uint8) Color {
	return Color{R: satAdd(c.R, n), G: satAdd(c.G, n), B: satAdd(c.B, n)}
}

// Darker returns the color with n subtracted from every channel,
// saturating at 0.
func (c Color) Darker(n uint8) Color {
	return Color{R: satSub(c.R, n), G: satSub(c.G, n), B: satSub(c.B, n)}
}

// Lerp performs linear interpolation between two colors.
// t is clamped to [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{R: lerp(c.R, o.R), G: lerp(c.G, o.G), B: lerp(c.B, o.B)}
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func satSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}
