package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-distributed-raytracer/pkg/core"
	"github.com/df07/go-distributed-raytracer/pkg/geometry"
	"github.com/df07/go-distributed-raytracer/pkg/lights"
	"github.com/df07/go-distributed-raytracer/pkg/material"
)

// hitAt builds the intersection for a point on a unit sphere at the origin
func hitAt(sphere *geometry.Sphere, theta float64) geometry.IntersectionResult {
	normal := core.NewVec3(math.Sin(theta), math.Cos(theta), 0)
	return geometry.IntersectionResult{
		Intersection: geometry.Intersection{Point: normal, Normal: normal, T: 1},
		Shape:        sphere,
		Distance:     1,
	}
}

// viewRay returns a ray arriving at the hit point along its normal
func viewRay(hit geometry.IntersectionResult) core.Ray {
	origin := hit.Point.Add(hit.Normal.Multiply(2))
	return core.NewRay(origin, hit.Point.Subtract(origin))
}

func TestShade_DiffuseFallsOffWithAngle(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewMatte(core.Gray(0.8)))
	sun := lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.Gray(1))
	sc := createTestScene(t, []geometry.Shape{sphere}, []lights.Light{sun})
	ambient := 0.8 * sc.AmbientIntensity

	angles := []float64{0, 20, 45, 70, 89}
	previous := math.Inf(1)
	for _, degrees := range angles {
		hit := hitAt(sphere, degrees*math.Pi/180)
		var counters Counters
		got := Shade(sc, viewRay(hit), hit, &counters)

		if got.R >= previous {
			t.Errorf("At %v°: expected intensity below %v, got %v", degrees, previous, got.R)
		}
		if got.R <= ambient {
			t.Errorf("At %v°: expected more than ambient %v, got %v", degrees, ambient, got.R)
		}
		previous = got.R
	}

	// Beyond the terminator only ambient remains
	for _, degrees := range []float64{90, 100, 135, 180} {
		hit := hitAt(sphere, degrees*math.Pi/180)
		var counters Counters
		got := Shade(sc, viewRay(hit), hit, &counters)
		if math.Abs(got.R-ambient) > 1e-12 {
			t.Errorf("At %v°: expected ambient %v, got %v", degrees, ambient, got.R)
		}
	}
}

func TestShade_OccluderRemovesDirectLightOnly(t *testing.T) {
	mat := material.NewPhong(core.Gray(0.5), core.Gray(0.8), core.Gray(0.5), 10)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	light := lights.NewPointLight(core.NewVec3(0, 10, 0), core.Gray(1))
	hit := hitAt(sphere, 0)

	lit := createTestScene(t, []geometry.Shape{sphere}, []lights.Light{light})
	var litCounters Counters
	unshadowed := Shade(lit, viewRay(hit), hit, &litCounters)

	blocker := geometry.NewSphere(core.NewVec3(0, 5, 0), 0.5, material.NewMatte(core.Gray(1)))
	shadowed := createTestScene(t, []geometry.Shape{sphere, blocker}, []lights.Light{light})
	var counters Counters
	got := Shade(shadowed, viewRay(hit), hit, &counters)

	ambient := mat.Ambient.Multiply(shadowed.AmbientIntensity)
	if got != ambient {
		t.Errorf("Expected ambient only %v, got %v", ambient, got)
	}
	if unshadowed.R <= ambient.R {
		t.Errorf("Expected unshadowed point brighter than ambient, got %v", unshadowed)
	}
	if counters.ShadowRays != 1 {
		t.Errorf("Expected 1 shadow ray, got %d", counters.ShadowRays)
	}
}

func TestShade_OccluderBeyondLightIgnored(t *testing.T) {
	mat := material.NewMatte(core.Gray(0.8))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	light := lights.NewPointLight(core.NewVec3(0, 3, 0), core.Gray(1))
	behindLight := geometry.NewSphere(core.NewVec3(0, 6, 0), 1, mat)
	sc := createTestScene(t, []geometry.Shape{sphere, behindLight}, []lights.Light{light})

	hit := hitAt(sphere, 0)
	var counters Counters
	got := Shade(sc, viewRay(hit), hit, &counters)

	expected := 0.8*sc.AmbientIntensity + 0.8
	if math.Abs(got.R-expected) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got.R)
	}
}

func TestShade_AmbientAddedOnce(t *testing.T) {
	mat := material.NewMatte(core.Gray(0.5))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	// Three lights all behind the shaded point contribute nothing but ambient
	behind := []lights.Light{
		lights.NewPointLight(core.NewVec3(0, -5, 0), core.Gray(1)),
		lights.NewPointLight(core.NewVec3(1, -5, 0), core.Gray(1)),
		lights.NewDirectionalLight(core.NewVec3(0, 1, 0), core.Gray(1)),
	}
	sc := createTestScene(t, []geometry.Shape{sphere}, behind)

	hit := hitAt(sphere, 0)
	var counters Counters
	got := Shade(sc, viewRay(hit), hit, &counters)

	if math.Abs(got.R-0.05) > 1e-12 {
		t.Errorf("Expected ambient 0.05 once, got %v", got.R)
	}
}

func TestShade_SpecularHighlight(t *testing.T) {
	shiny := material.NewPhong(core.FColor{}, core.FColor{}, core.Gray(1), 50)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, shiny)
	sun := lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.Gray(1))
	sc := createTestScene(t, []geometry.Shape{sphere}, []lights.Light{sun})

	hit := hitAt(sphere, 0)
	var counters Counters

	// Viewer along the reflected direction sees the full highlight
	mirrorView := Shade(sc, viewRay(hit), hit, &counters)
	if math.Abs(mirrorView.R-1) > 1e-9 {
		t.Errorf("Expected full highlight 1, got %v", mirrorView.R)
	}

	// Viewer at a grazing angle sees almost none of it
	grazing := core.NewRay(core.NewVec3(-5, 1.1, 0), core.NewVec3(5, -0.1, 0))
	got := Shade(sc, grazing, hit, &counters)
	if got.R >= 0.01 {
		t.Errorf("Expected negligible highlight at grazing angle, got %v", got.R)
	}
}
