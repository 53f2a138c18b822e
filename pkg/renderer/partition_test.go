package renderer

import (
	"errors"
	"testing"
)

func TestPartitionSamples(t *testing.T) {
	tests := []struct {
		name     string
		samples  int
		world    int
		policy   RemainderPolicy
		expected []SampleRange
	}{
		{"single worker", 20, 1, RemainderDrop, []SampleRange{{0, 20}}},
		{"even split", 20, 4, RemainderDrop, []SampleRange{{0, 5}, {5, 5}, {10, 5}, {15, 5}}},
		{"remainder dropped", 10, 3, RemainderDrop, []SampleRange{{0, 3}, {3, 3}, {6, 3}}},
		{"remainder to coordinator", 10, 3, RemainderToCoordinator, []SampleRange{{0, 4}, {4, 3}, {7, 3}}},
		{"even split ignores policy", 20, 4, RemainderToCoordinator, []SampleRange{{0, 5}, {5, 5}, {10, 5}, {15, 5}}},
		{"fewer samples than workers", 2, 4, RemainderDrop, []SampleRange{{0, 0}, {0, 0}, {0, 0}, {0, 0}}},
		{"fewer samples to coordinator", 2, 4, RemainderToCoordinator, []SampleRange{{0, 2}, {2, 0}, {2, 0}, {2, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for rank, expected := range tt.expected {
				got, err := PartitionSamples(tt.samples, tt.world, rank, tt.policy)
				if err != nil {
					t.Fatalf("Rank %d: unexpected error %v", rank, err)
				}
				if got != expected {
					t.Errorf("Rank %d: expected %v, got %v", rank, expected, got)
				}
			}
		})
	}
}

func TestPartitionSamples_CoordinatorCoversEverySample(t *testing.T) {
	for samples := 1; samples <= 30; samples++ {
		for world := 1; world <= 8; world++ {
			next := 0
			for rank := 0; rank < world; rank++ {
				r, err := PartitionSamples(samples, world, rank, RemainderToCoordinator)
				if err != nil {
					t.Fatalf("S=%d W=%d rank %d: %v", samples, world, rank, err)
				}
				if r.Start != next {
					t.Fatalf("S=%d W=%d rank %d: expected start %d, got %d", samples, world, rank, next, r.Start)
				}
				next = r.End()
			}
			if next != samples {
				t.Errorf("S=%d W=%d: ranges end at %d", samples, world, next)
			}
		}
	}
}

func TestPartitionSamples_Errors(t *testing.T) {
	tests := []struct {
		name    string
		samples int
		world   int
		rank    int
		wantErr error
	}{
		{"zero world size", 20, 0, 0, ErrInvalidWorldSize},
		{"negative world size", 20, -1, 0, ErrInvalidWorldSize},
		{"rank too large", 20, 4, 4, ErrInvalidRank},
		{"negative rank", 20, 4, -1, ErrInvalidRank},
		{"zero samples", 0, 4, 0, ErrInvalidSamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PartitionSamples(tt.samples, tt.world, tt.rank, RemainderDrop)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseRemainderPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected RemainderPolicy
		wantErr  bool
	}{
		{"", RemainderDrop, false},
		{"drop", RemainderDrop, false},
		{"coordinator", RemainderToCoordinator, false},
		{"spread", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseRemainderPolicy(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRemainderPolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("ParseRemainderPolicy(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
