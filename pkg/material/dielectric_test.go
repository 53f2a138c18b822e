package material

import (
	"math"
	"testing"

	"github.com/df07/go-distributed-raytracer/pkg/core"
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestOrient_EntryAndExit(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	tests := []struct {
		name           string
		view           core.Vec3
		expectedNormal core.Vec3
		expectedN1     float64
		expectedN2     float64
	}{
		{"entering from outside", core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), 1.0, 1.5},
		{"leaving from inside", core.NewVec3(0, -1, 0), core.NewVec3(0, -1, 0), 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iface := Orient(tt.view, normal, 1.0, 1.5)
			if iface.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, iface.Normal)
			}
			if iface.Incident != tt.expectedN1 || iface.Transmit != tt.expectedN2 {
				t.Errorf("Expected indices (%f, %f), got (%f, %f)",
					tt.expectedN1, tt.expectedN2, iface.Incident, iface.Transmit)
			}
		})
	}
}

func TestRefract_NormalIncidencePassesStraight(t *testing.T) {
	iface := Orient(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), 1.0, 1.5)
	direction, cosTransmit, ok := iface.Refract(core.NewVec3(0, 1, 0))
	if !ok {
		t.Fatal("Expected refraction at normal incidence")
	}
	if !vecNear(direction, core.NewVec3(0, -1, 0), 1e-9) {
		t.Errorf("Expected straight-through direction, got %v", direction)
	}
	if math.Abs(cosTransmit-1) > 1e-9 {
		t.Errorf("Expected cos transmit 1, got %f", cosTransmit)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	// 45 degrees from the normal, air into glass
	view := core.NewVec3(1, 1, 0).Normalize()
	iface := Orient(view, core.NewVec3(0, 1, 0), 1.0, 1.5)

	direction, _, ok := iface.Refract(view)
	if !ok {
		t.Fatal("Expected refraction")
	}

	sinIncident := math.Sin(math.Pi / 4)
	sinTransmit := math.Abs(direction.X) / direction.Length()
	if math.Abs(1.0*sinIncident-1.5*sinTransmit) > 1e-9 {
		t.Errorf("Snell's law violated: n1 sin1 = %f, n2 sin2 = %f", sinIncident, 1.5*sinTransmit)
	}
	if direction.Y >= 0 {
		t.Errorf("Refracted ray should continue below the surface, got %v", direction)
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Leaving glass at a grazing angle
	view := core.NewVec3(1, -0.2, 0).Normalize()
	iface := Orient(view, core.NewVec3(0, 1, 0), 1.0, 1.5)

	if _, _, ok := iface.Refract(view); ok {
		t.Error("Expected total internal reflection")
	}
}

func TestFresnel_NormalIncidence(t *testing.T) {
	iface := Interface{Normal: core.NewVec3(0, 1, 0), Incident: 1.0, Transmit: 1.5}
	reflectance, transmittance := iface.Fresnel(1, 1)

	// ((n1-n2)/(n1+n2))^2 = 0.04
	if math.Abs(reflectance-0.04) > 1e-9 {
		t.Errorf("Expected reflectance 0.04, got %f", reflectance)
	}
	if math.Abs(reflectance+transmittance-1) > 1e-12 {
		t.Errorf("Reflectance and transmittance must sum to 1, got %f", reflectance+transmittance)
	}
}

func TestFresnel_GrazingIsFullyReflective(t *testing.T) {
	iface := Interface{Normal: core.NewVec3(0, 1, 0), Incident: 1.0, Transmit: 1.5}
	reflectance, _ := iface.Fresnel(0, math.Sqrt(1-1/(1.5*1.5)))
	if math.Abs(reflectance-1) > 1e-9 {
		t.Errorf("Expected reflectance 1 at grazing incidence, got %f", reflectance)
	}
}

func TestMirrorDirection(t *testing.T) {
	view := core.NewVec3(-1, 1, 0)
	reflected := MirrorDirection(view, core.NewVec3(0, 1, 0))
	if !vecNear(reflected, core.NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Expected (1,1,0), got %v", reflected)
	}
}

func TestNewMirror_HasNoLocalResponse(t *testing.T) {
	m := NewMirror(core.Gray(1))
	if !m.Reflective || m.Refractive {
		t.Error("Mirror should be reflective only")
	}
	if !m.Diffuse.IsBlack() || !m.Ambient.IsBlack() || !m.Specular.IsBlack() {
		t.Error("Mirror should have no Phong coefficients")
	}
	if !m.HasSecondaryRays() {
		t.Error("Mirror should spawn secondary rays")
	}
	if NewMatte(core.Gray(0.5)).HasSecondaryRays() {
		t.Error("Matte material should not spawn secondary rays")
	}
}
