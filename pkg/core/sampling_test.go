package core

import "testing"

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 10000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Sample %d out of range [0,1): %f", i, v)
		}
	}
}

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)
	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with equal seeds diverged at sample %d", i)
		}
	}
}

func TestStreamSampler_ResetReplaysStream(t *testing.T) {
	sampler := NewStreamSampler(3)

	sampler.Reset(17)
	first := []float64{sampler.Get1D(), sampler.Get1D(), sampler.Get1D()}

	sampler.Reset(4)
	other := sampler.Get1D()

	sampler.Reset(17)
	for i, expected := range first {
		if got := sampler.Get1D(); got != expected {
			t.Errorf("Value %d: expected %v after reset, got %v", i, expected, got)
		}
	}
	if other == first[0] {
		t.Error("Expected different streams to produce different values")
	}
}

func TestStreamSampler_Range(t *testing.T) {
	sampler := NewStreamSampler(99)
	for stream := uint64(0); stream < 100; stream++ {
		sampler.Reset(stream)
		for i := 0; i < 100; i++ {
			v := sampler.Get1D()
			if v < 0 || v >= 1 {
				t.Fatalf("Stream %d sample %d out of range [0,1): %f", stream, i, v)
			}
		}
	}
}
