package core

// Color4 stores explicit float channels in linear space.
// It is a comparable value type so it can key derived-resource caches:
// two colors are the same cache entry only when bitwise equal.
type Color4 struct {
	R, G, B, A float32
}

// Predefined colors
var (
	ColorWhite = Color4{1, 1, 1, 1}
	ColorBlack = Color4{0, 0, 0, 1}
)

// RGBA constructs a color from individual channels
func RGBA(r, g, b, a float32) Color4 {
	return Color4{r, g, b, a}
}

// Scale multiplies the color channels by factor, leaving alpha untouched
func (c Color4) Scale(factor float32) Color4 {
	return Color4{c.R * factor, c.G * factor, c.B * factor, c.A}
}

// Bytes returns the color as 8-bit RGBA pixel data, clamped to [0,1]
func (c Color4) Bytes() [4]byte {
	return [4]byte{
		clampByte(c.R),
		clampByte(c.G),
		clampByte(c.B),
		clampByte(c.A),
	}
}

func clampByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
