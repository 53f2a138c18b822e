package cluster

import (
	"context"
	"errors"
	"fmt"
)

// Coordinator is the rank that receives the reduced result
const Coordinator = 0

var (
	ErrSizeMismatch  = errors.New("cluster: contributions differ in length")
	ErrClosed        = errors.New("cluster: communicator closed")
	ErrInvalidRank   = errors.New("cluster: rank out of range")
	ErrInvalidSize   = errors.New("cluster: group size must be positive")
	ErrPeerFailed    = errors.New("cluster: reduction failed on coordinator")
	ErrDuplicateRank = errors.New("cluster: rank joined twice")
	ErrGroupMismatch = errors.New("cluster: peer disagrees on group size")
)

// Communicator connects one rank to its group for a collective reduction.
// Every rank of the group must call ReduceSum; the call blocks until all of
// them have contributed, so a rank that never arrives stalls the group.
type Communicator interface {
	// Rank returns this member's position in [0, Size)
	Rank() int

	// Size returns the number of ranks in the group
	Size() int

	// ReduceSum adds data element-wise across all ranks. The coordinator
	// receives the sum; every other rank receives nil once the coordinator
	// has finished.
	ReduceSum(ctx context.Context, data []float64) ([]float64, error)

	// Close releases the member's resources
	Close() error
}

// IsCoordinator reports whether c receives reduction results
func IsCoordinator(c Communicator) bool {
	return c.Rank() == Coordinator
}

// sumInRankOrder adds contributions ordered by rank into a new slice
func sumInRankOrder(contributions [][]float64) ([]float64, error) {
	length := len(contributions[0])
	sum := make([]float64, length)
	for rank, data := range contributions {
		if len(data) != length {
			return nil, fmt.Errorf("%w: rank %d sent %d values, rank 0 sent %d", ErrSizeMismatch, rank, len(data), length)
		}
		for i, v := range data {
			sum[i] += v
		}
	}
	return sum, nil
}

func validateRank(rank, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if rank < 0 || rank >= size {
		return fmt.Errorf("%w: rank %d with size %d", ErrInvalidRank, rank, size)
	}
	return nil
}
