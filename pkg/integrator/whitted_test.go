package integrator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/geometry"
	"github.com/df07/go-distributed-raytracer/pkg/lights"
	"github.com/df07/go-distributed-raytracer/pkg/material"
	"github.com/df07/go-distributed-raytracer/pkg/scene"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// createTestScene returns a preprocessed scene with the given shapes and lights
func createTestScene(t *testing.T, shapes []geometry.Shape, sceneLights []lights.Light) *scene.Scene {
	t.Helper()
	sc := &scene.Scene{
		Name:             "test",
		Shapes:           shapes,
		Lights:           sceneLights,
		CameraConfig:     geometry.CameraConfig{Position: core.NewVec3(0, 0, -5), Width: 101, Height: 101},
		Background:       core.NewFColor(0.2, 0.4, 0.6),
		AmbientIntensity: 0.1,
		VacuumIndex:      scene.VacuumIndex,
		RayEpsilon:       scene.DefaultRayEpsilon,
		SamplingConfig:   scene.SamplingConfig{SamplesPerPixel: 1, MaxDepth: 10},
	}
	if err := sc.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	return sc
}

func TestWhitted_EmptySceneReturnsBackground(t *testing.T) {
	sc := createTestScene(t, nil, []lights.Light{lights.NewPointLight(core.NewVec3(0, 5, 0), core.Gray(1))})
	integrator := NewWhittedIntegrator(sc.SamplingConfig, TerminateContributeNothing)

	directions := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 2, 3),
		core.NewVec3(0, -1, 0),
		core.NewVec3(-0.3, 0.1, -5),
	}

	for _, dir := range directions {
		var counters Counters
		got := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, -5), dir), sc, &counters)
		if got != sc.Background {
			t.Errorf("Direction %v: expected background %v, got %v", dir, sc.Background, got)
		}
	}
}

func TestWhitted_SphereScenarioCentralRay(t *testing.T) {
	white := material.NewPhong(core.Gray(1), core.Gray(1), core.Gray(0.3), 20)
	floor := material.NewMatte(core.Gray(0.7))
	sc := createTestScene(t,
		[]geometry.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, 5), 1, white),
			geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), floor),
		},
		[]lights.Light{lights.NewPointLight(core.NewVec3(0, 5, -5), core.Gray(1))},
	)
	integrator := NewWhittedIntegrator(sc.SamplingConfig, TerminateContributeNothing)

	var counters Counters
	got := integrator.RayColor(sc.Camera.GetRay(50, 50), sc, &counters)

	if got.R != got.G || got.G != got.B {
		t.Errorf("Expected gray pixel, got %v", got)
	}
	ambientFloor := white.Ambient.R * sc.AmbientIntensity
	if got.R <= ambientFloor || got.R >= 1 {
		t.Errorf("Expected value strictly between %v and 1, got %v", ambientFloor, got.R)
	}

	pixel := uint8(math.Round(got.Normalize().R * 255))
	if pixel <= uint8(ambientFloor*255) || pixel == 255 {
		t.Errorf("Expected 8-bit value strictly inside (ambient, 255), got %d", pixel)
	}

	if counters.PrimaryRays != 1 || counters.ShadowRays != 1 {
		t.Errorf("Expected 1 primary and 1 shadow ray, got %+v", counters)
	}
	if counters.IntersectionTests != 4 {
		t.Errorf("Expected 4 intersection tests, got %d", counters.IntersectionTests)
	}
}

func TestWhitted_MirrorSphereReflectsBackground(t *testing.T) {
	mirror := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.NewMirror(core.Gray(1)))
	sc := createTestScene(t, []geometry.Shape{mirror}, nil)
	integrator := NewWhittedIntegrator(sc.SamplingConfig, TerminateContributeNothing)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"head on", core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))},
		{"off axis", core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0.05, 0.08, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var counters Counters
			got := integrator.RayColor(tt.ray, sc, &counters)
			if !cmp.Equal(got, sc.Background, approx) {
				t.Errorf("Expected background %v, got %v", sc.Background, got)
			}
			if counters.ReflectionRays != 1 {
				t.Errorf("Expected 1 reflection ray, got %d", counters.ReflectionRays)
			}
		})
	}
}

func TestWhitted_GlassSphereConservesBackground(t *testing.T) {
	glass := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.NewGlass(1.5, core.Gray(1)))
	sc := createTestScene(t, []geometry.Shape{glass}, nil)
	integrator := NewWhittedIntegrator(sc.SamplingConfig, TerminateContributeNothing)

	var counters Counters
	got := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), sc, &counters)

	// At normal incidence the Fresnel split loses no energy, so the reflected
	// and transmitted paths together reproduce the background.
	if !cmp.Equal(got, sc.Background, cmpopts.EquateApprox(0, 1e-6)) {
		t.Errorf("Expected background %v, got %v", sc.Background, got)
	}
	if counters.RefractionRays == 0 {
		t.Error("Expected refraction rays to be cast")
	}
}

func TestWhitted_TerminationPolicy(t *testing.T) {
	mirror := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.NewMirror(core.Gray(0.5)))

	tests := []struct {
		name     string
		policy   TerminationPolicy
		expected core.FColor
	}{
		{"contribute nothing", TerminateContributeNothing, core.FColor{}},
		{"white", TerminateWhite, core.Gray(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := createTestScene(t, []geometry.Shape{mirror}, nil)
			sc.SamplingConfig.MaxDepth = 1
			integrator := NewWhittedIntegrator(sc.SamplingConfig, tt.policy)

			var counters Counters
			got := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), sc, &counters)
			if !cmp.Equal(got, tt.expected, approx) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWhitted_DepthBoundsRecursion(t *testing.T) {
	// Two parallel mirrors facing each other bounce forever without a depth limit
	mirror := material.NewMirror(core.Gray(1))
	sc := createTestScene(t,
		[]geometry.Shape{
			geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 5), mirror),
			geometry.NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -10), mirror),
		},
		nil,
	)
	sc.SamplingConfig.MaxDepth = 6
	integrator := NewWhittedIntegrator(sc.SamplingConfig, TerminateContributeNothing)

	var counters Counters
	got := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), sc, &counters)

	if !got.IsBlack() {
		t.Errorf("Expected no contribution from an endless mirror corridor, got %v", got)
	}
	if counters.ReflectionRays != 6 {
		t.Errorf("Expected 6 reflection rays, got %d", counters.ReflectionRays)
	}
}

func TestParseTerminationPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected TerminationPolicy
		wantErr  bool
	}{
		{"", TerminateContributeNothing, false},
		{"nothing", TerminateContributeNothing, false},
		{"white", TerminateWhite, false},
		{"black", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTerminationPolicy(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTerminationPolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("ParseTerminationPolicy(%q) = %v, want %v", tt.input, got, tt.expected)
		}
		if !tt.wantErr && got.String() != tt.input && tt.input != "" {
			t.Errorf("String() = %q, want %q", got.String(), tt.input)
		}
	}
}
