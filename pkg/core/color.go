package core

// FColor is an unclamped RGB radiance value. Channels may exceed 1 while
// radiance is being accumulated; Normalize maps it into displayable range.
type FColor struct {
	R, G, B float64
}

// NewFColor creates a new FColor
func NewFColor(r, g, b float64) FColor {
	return FColor{R: r, G: g, B: b}
}

// Gray returns a color with all three channels set to v
func Gray(v float64) FColor {
	return FColor{R: v, G: v, B: v}
}

// Add returns the channel-wise sum of two colors
func (c FColor) Add(other FColor) FColor {
	return FColor{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c FColor) Multiply(scalar float64) FColor {
	return FColor{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the channel-wise (Hadamard) product of two colors
func (c FColor) MultiplyColor(other FColor) FColor {
	return FColor{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Normalize clamps each channel to [0, 1]
func (c FColor) Normalize() FColor {
	return FColor{
		R: max(0, min(1, c.R)),
		G: max(0, min(1, c.G)),
		B: max(0, min(1, c.B)),
	}
}

// IsBlack reports whether every channel is exactly zero
func (c FColor) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}
