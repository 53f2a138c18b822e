package scene

import (
	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/geometry"
	"github.com/df07/go-distributed-raytracer/pkg/lights"
	"github.com/df07/go-distributed-raytracer/pkg/material"
)

// addRoom adds the five walls of a 2x2 room open towards the camera
func addRoom(s *Scene, left, right core.FColor) {
	white := material.NewMatte(core.Gray(0.7))

	s.AddShape(
		geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), white),  // floor
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), white),  // ceiling
		geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), material.NewMatte(left)),
		geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), material.NewMatte(right)),
		geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 5), white), // back wall
	)
}

func roomCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Position: core.NewVec3(0, 0, -5),
		Width:    512,
		Height:   512,
	}
}

// NewCornellScene creates a closed room with red and blue side walls, a
// mirror sphere and a green diffuse sphere, lit from just below the ceiling.
func NewCornellScene() *Scene {
	s := newScene("cornell", roomCamera())
	addRoom(s, core.NewFColor(1, 0.4, 0.4), core.NewFColor(0.4, 0.4, 1))

	s.AddShape(
		geometry.NewSphere(core.NewVec3(-0.4, -0.65, 3), 0.35, material.NewMirror(core.Gray(1))),
		geometry.NewSphere(core.NewVec3(0.5, -0.65, 2), 0.35, material.NewMatte(core.NewFColor(0.4, 1, 0.4))),
	)
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 0.9, 2.5), core.Gray(1)))

	return s
}

// NewRefractionScene replaces the diffuse sphere of the Cornell scene with a
// glass sphere.
func NewRefractionScene() *Scene {
	s := newScene("refraction", roomCamera())
	addRoom(s, core.NewFColor(1, 0, 0), core.NewFColor(0, 0, 1))

	s.AddShape(
		geometry.NewSphere(core.NewVec3(-0.4, -0.65, 3), 0.35, material.NewMirror(core.Gray(1))),
		geometry.NewSphere(core.NewVec3(0.5, -0.65, 2), 0.35, material.NewGlass(1.51, core.Gray(1))),
	)
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 0.9, 2.5), core.Gray(1)))
	s.SamplingConfig.MaxDepth = 8

	return s
}
