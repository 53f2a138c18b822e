package cluster

import (
	"context"
	"sync"
)

type contribution struct {
	rank int
	data []float64
}

type release struct {
	sum []float64
	err error
}

// LocalGroup reduces between goroutines of one process over channels.
type LocalGroup struct {
	size          int
	contributions chan contribution
	releases      []chan release
	closed        chan struct{}
	closeOnce     sync.Once
}

// NewLocalGroup creates a group of size in-process members
func NewLocalGroup(size int) (*LocalGroup, error) {
	if err := validateRank(0, size); err != nil {
		return nil, err
	}

	g := &LocalGroup{
		size:          size,
		contributions: make(chan contribution, size),
		releases:      make([]chan release, size),
		closed:        make(chan struct{}),
	}
	for i := range g.releases {
		g.releases[i] = make(chan release, 1)
	}
	return g, nil
}

// Member returns the communicator for rank
func (g *LocalGroup) Member(rank int) (Communicator, error) {
	if err := validateRank(rank, g.size); err != nil {
		return nil, err
	}
	return &localMember{group: g, rank: rank}, nil
}

// Members returns the communicators for every rank in order
func (g *LocalGroup) Members() []Communicator {
	members := make([]Communicator, g.size)
	for rank := range members {
		members[rank] = &localMember{group: g, rank: rank}
	}
	return members
}

// Close aborts any pending reduction
func (g *LocalGroup) Close() error {
	g.closeOnce.Do(func() {
		close(g.closed)
	})
	return nil
}

type localMember struct {
	group *LocalGroup
	rank  int
}

func (m *localMember) Rank() int {
	return m.rank
}

func (m *localMember) Size() int {
	return m.group.size
}

func (m *localMember) Close() error {
	return nil
}

func (m *localMember) ReduceSum(ctx context.Context, data []float64) ([]float64, error) {
	g := m.group

	select {
	case g.contributions <- contribution{rank: m.rank, data: data}:
	case <-g.closed:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if m.rank == Coordinator {
		return m.collect(ctx)
	}

	select {
	case r := <-g.releases[m.rank]:
		return r.sum, r.err
	case <-g.closed:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// collect gathers every contribution, sums them and releases the other ranks
func (m *localMember) collect(ctx context.Context) ([]float64, error) {
	g := m.group
	byRank := make([][]float64, g.size)

	for received := 0; received < g.size; received++ {
		select {
		case c := <-g.contributions:
			byRank[c.rank] = c.data
		case <-g.closed:
			return nil, ErrClosed
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	sum, err := sumInRankOrder(byRank)
	for rank := 1; rank < g.size; rank++ {
		g.releases[rank] <- release{err: err}
	}
	return sum, err
}
