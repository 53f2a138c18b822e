package scene

import (
	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/geometry"
	"github.com/df07/go-distributed-raytracer/pkg/lights"
	"github.com/df07/go-distributed-raytracer/pkg/material"
)

const (
	sandboxSpheres = 50
	sandboxSeed    = 10
)

// NewSandboxScene creates a floor scattered with random spheres under three
// point lights and one directional light. The layout is seeded so that every
// process building the scene gets identical geometry.
func NewSandboxScene() *Scene {
	s := newScene("sandbox", geometry.CameraConfig{
		Position: core.NewVec3(0, 0, -5),
		Width:    1024,
		Height:   1024,
	})
	random := core.NewSeededSampler(sandboxSeed)

	s.AddShape(
		geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), material.NewMatte(core.Gray(0.7))),
		geometry.NewSphere(core.NewVec3(-0.4, -0.65, 3), 0.35, material.NewMirror(core.Gray(1))),
		geometry.NewSphere(core.NewVec3(0.5, -0.65, 2), 0.35, material.NewMirror(core.Gray(1))),
		geometry.NewSphere(core.NewVec3(-0.7, -0.65, 15), 0.35, material.NewMatte(core.NewFColor(0, 0.5, 1))),
		geometry.NewSphere(core.NewVec3(-0.1, -0.65, 20), 0.35, material.NewMirror(core.Gray(1))),
	)

	randomColor := func() core.FColor {
		return core.NewFColor(random.Get1D(), random.Get1D(), random.Get1D())
	}

	for i := 0; i < sandboxSpheres; i++ {
		center := core.NewVec3(10*random.Get1D()-5, 2*random.Get1D()-0.65, 40*random.Get1D())
		radius := 0.05 + 0.45*random.Get1D()

		var mat material.Material
		if random.Get1D() <= 0.1 {
			mat = material.NewMirror(core.Gray(1))
		} else {
			mat = material.NewPhong(randomColor(), randomColor(), randomColor(), 40*random.Get1D())
		}
		s.AddShape(geometry.NewSphere(center, radius, mat))
	}

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 1, 2.5), core.Gray(0.8)))
	s.AddLight(lights.NewPointLight(core.NewVec3(5, 0, -5), core.Gray(1.2)))
	s.AddLight(lights.NewPointLight(core.NewVec3(-5, 5, -5), core.Gray(0.5)))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(2, 0, 1), core.Gray(1)))

	return s
}
