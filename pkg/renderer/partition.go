package renderer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWorldSize = errors.New("renderer: world size must be positive")
	ErrInvalidRank      = errors.New("renderer: rank must be in [0, world size)")
	ErrInvalidSamples   = errors.New("renderer: samples per pixel must be positive")
	ErrBufferSize       = errors.New("renderer: buffer dimensions do not match")
	ErrUnknownPolicy    = errors.New("renderer: unknown remainder policy")
)

// RemainderPolicy decides who takes the S mod W samples left over when the
// worker count does not divide the samples per pixel
type RemainderPolicy int

const (
	// RemainderDrop leaves the leftover samples untaken. The image is still
	// divided by the nominal sample count and comes out slightly darker.
	RemainderDrop RemainderPolicy = iota

	// RemainderToCoordinator gives the leftover samples to rank 0
	RemainderToCoordinator
)

// String returns the flag value for the policy
func (p RemainderPolicy) String() string {
	switch p {
	case RemainderDrop:
		return "drop"
	case RemainderToCoordinator:
		return "coordinator"
	default:
		return fmt.Sprintf("RemainderPolicy(%d)", int(p))
	}
}

// ParseRemainderPolicy converts a flag value into a RemainderPolicy
func ParseRemainderPolicy(value string) (RemainderPolicy, error) {
	switch value {
	case "", "drop":
		return RemainderDrop, nil
	case "coordinator":
		return RemainderToCoordinator, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
	}
}

// SampleRange is the half-open interval [Start, Start+Count) of per-pixel
// sample indices assigned to one worker
type SampleRange struct {
	Start int
	Count int
}

// End returns the first sample index past the range
func (r SampleRange) End() int {
	return r.Start + r.Count
}

// String formats the range as [start, end)
func (r SampleRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End())
}

// PartitionSamples assigns the samples of every pixel to rank. Each worker
// gets ⌊S/W⌋ consecutive samples; the remainder is handled by policy.
func PartitionSamples(samplesPerPixel, worldSize, rank int, policy RemainderPolicy) (SampleRange, error) {
	if worldSize <= 0 {
		return SampleRange{}, fmt.Errorf("%w: got %d", ErrInvalidWorldSize, worldSize)
	}
	if rank < 0 || rank >= worldSize {
		return SampleRange{}, fmt.Errorf("%w: rank %d, world size %d", ErrInvalidRank, rank, worldSize)
	}
	if samplesPerPixel <= 0 {
		return SampleRange{}, fmt.Errorf("%w: got %d", ErrInvalidSamples, samplesPerPixel)
	}

	share := samplesPerPixel / worldSize
	remainder := samplesPerPixel % worldSize

	if policy != RemainderToCoordinator || remainder == 0 {
		return SampleRange{Start: share * rank, Count: share}, nil
	}

	if rank == 0 {
		return SampleRange{Start: 0, Count: share + remainder}, nil
	}
	return SampleRange{Start: remainder + share*rank, Count: share}, nil
}
