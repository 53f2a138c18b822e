package renderer

import (
	"fmt"
	"image"
	"image/color"
)

// Reduce sums partial buffers in the order given
func Reduce(buffers ...*RadianceBuffer) (*RadianceBuffer, error) {
	if len(buffers) == 0 {
		return nil, fmt.Errorf("%w: nothing to reduce", ErrInvalidWorldSize)
	}

	sum := NewRadianceBuffer(buffers[0].Width, buffers[0].Height)
	for _, b := range buffers {
		if err := sum.Add(b); err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// Finalize turns summed radiance into displayable values: every pixel is
// divided by the nominal samples per pixel and clamped to [0, 1].
func Finalize(sum *RadianceBuffer, samplesPerPixel int) (*RadianceBuffer, error) {
	if samplesPerPixel <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSamples, samplesPerPixel)
	}

	frame := NewRadianceBuffer(sum.Width, sum.Height)
	scale := 1.0 / float64(samplesPerPixel)
	for i, c := range sum.Pixels {
		frame.Pixels[i] = c.Multiply(scale).Normalize()
	}
	return frame, nil
}

// ToImage maps a finalized frame to 8 bits per channel
func ToImage(frame *RadianceBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y).Normalize()
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.R),
				G: uint8(255 * c.G),
				B: uint8(255 * c.B),
				A: 255,
			})
		}
	}
	return img
}
