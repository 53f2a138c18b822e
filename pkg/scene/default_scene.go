package scene

import (
	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/geometry"
	"github.com/df07/go-distributed-raytracer/pkg/lights"
	"github.com/df07/go-distributed-raytracer/pkg/material"
)

// NewSphereScene creates a white sphere resting above a floor plane, lit by a
// single point light behind and above the camera.
func NewSphereScene() *Scene {
	s := newScene("sphere", geometry.CameraConfig{
		Position: core.NewVec3(0, 0, -5),
		Width:    512,
		Height:   512,
	})

	white := material.NewPhong(core.Gray(1), core.Gray(1), core.Gray(0.3), 20)
	floor := material.NewMatte(core.Gray(0.7))

	s.AddShape(
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1, white),
		geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), floor),
	)
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 5, -5), core.Gray(1)))

	return s
}
