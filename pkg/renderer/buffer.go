package renderer

import (
	"fmt"

	"github.com/df07/go-distributed-raytracer/pkg/core"
)

// RadianceBuffer is a width×height grid of unclamped radiance, stored row
// by row. Each worker owns its buffer exclusively until the reduction.
type RadianceBuffer struct {
	Width  int
	Height int
	Pixels []core.FColor
}

// NewRadianceBuffer creates a zeroed buffer
func NewRadianceBuffer(width, height int) *RadianceBuffer {
	return &RadianceBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.FColor, width*height),
	}
}

// At returns the radiance stored for pixel (x, y)
func (b *RadianceBuffer) At(x, y int) core.FColor {
	return b.Pixels[y*b.Width+x]
}

// AddSample accumulates radiance into pixel (x, y)
func (b *RadianceBuffer) AddSample(x, y int, c core.FColor) {
	i := y*b.Width + x
	b.Pixels[i] = b.Pixels[i].Add(c)
}

// Add accumulates every pixel of other into b
func (b *RadianceBuffer) Add(other *RadianceBuffer) error {
	if other.Width != b.Width || other.Height != b.Height {
		return fmt.Errorf("%w: %dx%d and %dx%d", ErrBufferSize, b.Width, b.Height, other.Width, other.Height)
	}
	for i, c := range other.Pixels {
		b.Pixels[i] = b.Pixels[i].Add(c)
	}
	return nil
}

// Floats flattens the buffer into R,G,B triples for the collective reduction
func (b *RadianceBuffer) Floats() []float64 {
	data := make([]float64, 0, 3*len(b.Pixels))
	for _, c := range b.Pixels {
		data = append(data, c.R, c.G, c.B)
	}
	return data
}

// NewRadianceBufferFromFloats rebuilds a buffer from the output of Floats
func NewRadianceBufferFromFloats(width, height int, data []float64) (*RadianceBuffer, error) {
	if len(data) != 3*width*height {
		return nil, fmt.Errorf("%w: %d values for %dx%d pixels", ErrBufferSize, len(data), width, height)
	}
	b := NewRadianceBuffer(width, height)
	for i := range b.Pixels {
		b.Pixels[i] = core.NewFColor(data[3*i], data[3*i+1], data[3*i+2])
	}
	return b, nil
}
