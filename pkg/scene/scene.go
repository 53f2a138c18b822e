package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/geometry"
	"github.com/df07/go-distributed-raytracer/pkg/lights"
)

var (
	ErrInvalidSamples = errors.New("scene: samples per pixel must be positive")
	ErrInvalidDepth   = errors.New("scene: max depth must be at least 1")
	ErrUnknownScene   = errors.New("scene: unknown scene")
)

const (
	// DefaultRayEpsilon offsets secondary ray origins off the surface they start on
	DefaultRayEpsilon = 1e-4

	// VacuumIndex is the refractive index outside every object
	VacuumIndex = 1.0
)

// Scene contains all the elements needed for rendering. A scene is built
// once, preprocessed, and then only read while rendering, so a single
// instance may be shared by every worker.
type Scene struct {
	Name             string
	Shapes           []geometry.Shape // Objects in the scene
	Lights           []lights.Light   // Lights in the scene
	Camera           *geometry.Camera // Created by Preprocess
	CameraConfig     geometry.CameraConfig
	Background       core.FColor // Radiance of rays that escape the scene
	AmbientIntensity float64     // Global ambient light scalar
	VacuumIndex      float64     // Refractive index of the space between objects
	HitEpsilon       float64     // Intersections must satisfy t > HitEpsilon
	RayEpsilon       float64     // Offset applied to secondary ray origins
	SamplingConfig   SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of jittered rays per pixel across all workers
	MaxDepth        int // Maximum recursion depth, primary rays are depth 1
}

// newScene returns a scene with the defaults shared by every built-in scene
func newScene(name string, cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Name:             name,
		Shapes:           make([]geometry.Shape, 0),
		Lights:           make([]lights.Light, 0),
		CameraConfig:     cameraConfig,
		Background:       Cornflower,
		AmbientIntensity: 0.1,
		VacuumIndex:      VacuumIndex,
		RayEpsilon:       DefaultRayEpsilon,
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 20,
			MaxDepth:        5,
		},
	}
}

// SetResolution overrides the frame size. Preprocess must be called afterwards.
func (s *Scene) SetResolution(width, height int) {
	s.CameraConfig.Width = width
	s.CameraConfig.Height = height
	s.Camera = nil
}

// Validate checks the rendering preconditions without modifying the scene
func (s *Scene) Validate() error {
	if err := s.CameraConfig.Validate(); err != nil {
		return err
	}
	if s.SamplingConfig.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, s.SamplingConfig.SamplesPerPixel)
	}
	if s.SamplingConfig.MaxDepth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, s.SamplingConfig.MaxDepth)
	}
	return nil
}

// Preprocess validates the scene and prepares it for rendering
func (s *Scene) Preprocess() error {
	if err := s.Validate(); err != nil {
		return err
	}

	camera, err := geometry.NewCamera(s.CameraConfig)
	if err != nil {
		return err
	}
	s.Camera = camera

	if s.VacuumIndex == 0 {
		s.VacuumIndex = VacuumIndex
	}
	return nil
}

// Width returns the frame width in pixels
func (s *Scene) Width() int {
	return s.CameraConfig.Width
}

// Height returns the frame height in pixels
func (s *Scene) Height() int {
	return s.CameraConfig.Height
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// AddShape appends shapes to the scene
func (s *Scene) AddShape(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}
