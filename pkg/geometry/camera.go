package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-distributed-raytracer/pkg/core"
)

// ErrInvalidViewport is returned for frames too small to map onto the screen plane
var ErrInvalidViewport = errors.New("geometry: viewport width and height must both be greater than 1")

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Position core.Vec3 // Eye position
	Width    int       // Frame width in pixels
	Height   int       // Frame height in pixels
}

// Camera is a pinhole camera looking through the screen rectangle on the
// z=0 plane. Pixel (0,0) maps to the top-left corner (-aspect, 1, 0) and
// pixel (w-1, h-1) to the bottom-right corner (aspect, -1, 0).
type Camera struct {
	config CameraConfig
	aspect float64
}

// NewCamera validates config and creates a camera
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Camera{
		config: config,
		aspect: float64(config.Width) / float64(config.Height),
	}, nil
}

// Validate checks the viewport preconditions
func (c CameraConfig) Validate() error {
	if c.Width <= 1 || c.Height <= 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidViewport, c.Width, c.Height)
	}
	return nil
}

// Config returns the camera configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ScreenToWorld maps (possibly fractional) pixel coordinates to the screen plane
func (c *Camera) ScreenToWorld(x, y float64) core.Vec3 {
	lx := (2*x/float64(c.config.Width-1) - 1) * c.aspect
	ly := -2*y/float64(c.config.Height-1) + 1
	return core.NewVec3(lx, ly, 0)
}

// GetRay returns the ray from the eye through pixel coordinates (x, y)
func (c *Camera) GetRay(x, y float64) core.Ray {
	return core.NewRay(c.config.Position, c.ScreenToWorld(x, y).Subtract(c.config.Position))
}
