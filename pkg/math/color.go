package math

// Color is an RGB triple. Components are unbounded during shading; clamping
// to [0,1] happens only when a canvas is encoded to an image format.
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the componentwise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the componentwise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Multiply returns the componentwise (Hadamard) product of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports componentwise equality within Epsilon.
func (c Color) Equals(other Color) bool {
	return EqualApprox(c.R, other.R) && EqualApprox(c.G, other.G) && EqualApprox(c.B, other.B)
}
