package cluster

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/df07/go-distributed-raytracer/pkg/log"
)

var logger = log.New("cluster")

// dialRetryInterval is the pause between attempts to reach the coordinator
const dialRetryInterval = 200 * time.Millisecond

// handshakeTimeout bounds how long the coordinator waits for a peer's hello
var handshakeTimeout = 5 * time.Second

type hello struct {
	Rank int
	Size int
}

type welcome struct {
	Err string
}

type partial struct {
	Rank int
	Data []float64
}

type ack struct {
	Err string
}

// peer is one end of a gob-encoded connection
type peer struct {
	rank int
	conn net.Conn
	enc  *gob.Encoder
	dec  *gob.Decoder
}

func newPeer(rank int, conn net.Conn) *peer {
	return &peer{rank: rank, conn: conn, enc: gob.NewEncoder(conn), dec: gob.NewDecoder(conn)}
}

// TCPCommunicator reduces across processes. Rank 0 listens and every other
// rank dials in; buffers travel gob-encoded over one connection per rank.
type TCPCommunicator struct {
	rank int
	size int

	// coordinator side
	listener net.Listener
	peers    []*peer

	// worker side
	coordinator *peer

	mu     sync.Mutex
	closed bool
}

// Listen creates the coordinator of a group of size ranks. Peers are accepted
// by WaitForPeers, which ReduceSum calls on first use.
func Listen(addr string, size int) (*TCPCommunicator, error) {
	if err := validateRank(Coordinator, size); err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("cluster: listen on %s: %w", addr, err)
	}
	logger.Infof("coordinator listening on %s for %d peers", listener.Addr(), size-1)

	return &TCPCommunicator{
		rank:     Coordinator,
		size:     size,
		listener: listener,
	}, nil
}

// Dial joins the group coordinated at addr as rank. It retries until the
// coordinator accepts or ctx is done.
func Dial(ctx context.Context, addr string, rank, size int) (*TCPCommunicator, error) {
	if err := validateRank(rank, size); err != nil {
		return nil, err
	}
	if rank == Coordinator {
		return nil, fmt.Errorf("%w: rank 0 must listen, not dial", ErrInvalidRank)
	}

	var dialer net.Dialer
	for {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			return join(ctx, conn, rank, size)
		}
		logger.Debugf("rank %d: coordinator at %s not reachable yet: %v", rank, addr, err)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("cluster: dial %s: %w", addr, ctx.Err())
		case <-time.After(dialRetryInterval):
		}
	}
}

// join performs the handshake from the worker side
func join(ctx context.Context, conn net.Conn, rank, size int) (*TCPCommunicator, error) {
	stop := context.AfterFunc(ctx, func() { conn.SetDeadline(time.Now()) })
	defer stop()

	p := newPeer(Coordinator, conn)
	if err := p.enc.Encode(hello{Rank: rank, Size: size}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("cluster: send hello: %w", err)
	}

	var w welcome
	if err := p.dec.Decode(&w); err != nil {
		conn.Close()
		return nil, fmt.Errorf("cluster: read welcome: %w", err)
	}
	if w.Err != "" {
		conn.Close()
		return nil, fmt.Errorf("%w: %s", ErrPeerFailed, w.Err)
	}

	logger.Debugf("rank %d joined coordinator at %s", rank, conn.RemoteAddr())
	return &TCPCommunicator{rank: rank, size: size, coordinator: p}, nil
}

// Addr returns the coordinator's listening address
func (c *TCPCommunicator) Addr() net.Addr {
	if c.listener == nil {
		return nil
	}
	return c.listener.Addr()
}

func (c *TCPCommunicator) Rank() int {
	return c.rank
}

func (c *TCPCommunicator) Size() int {
	return c.size
}

// WaitForPeers accepts connections until every rank has joined. It is a
// no-op on workers and once the group is complete.
func (c *TCPCommunicator) WaitForPeers(ctx context.Context) error {
	if c.rank != Coordinator || c.peers != nil {
		return nil
	}
	if c.isClosed() {
		return ErrClosed
	}

	stop := context.AfterFunc(ctx, func() { c.listener.Close() })
	defer stop()

	peers := make([]*peer, c.size)
	for joined := 1; joined < c.size; {
		conn, err := c.listener.Accept()
		if err != nil {
			closePeers(peers)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("cluster: accept: %w", err)
		}

		p, err := c.greet(ctx, conn, peers)
		if err != nil {
			logger.Warningf("rejected peer %s: %v", conn.RemoteAddr(), err)
			conn.Close()
			continue
		}
		peers[p.rank] = p
		joined++
		logger.Debugf("rank %d joined from %s (%d/%d)", p.rank, conn.RemoteAddr(), joined, c.size)
	}

	c.peers = peers
	c.listener.Close()
	logger.Infof("all %d ranks joined", c.size)
	return nil
}

// greet reads a peer's hello and answers with a welcome
func (c *TCPCommunicator) greet(ctx context.Context, conn net.Conn, peers []*peer) (*peer, error) {
	conn.SetDeadline(time.Now().Add(handshakeTimeout))
	stop := context.AfterFunc(ctx, func() { conn.SetDeadline(time.Now()) })
	defer stop()

	p := newPeer(-1, conn)

	var h hello
	if err := p.dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("read hello: %w", err)
	}

	var err error
	switch {
	case h.Size != c.size:
		err = fmt.Errorf("%w: peer says %d, coordinator has %d", ErrGroupMismatch, h.Size, c.size)
	case h.Rank <= Coordinator || h.Rank >= c.size:
		err = fmt.Errorf("%w: rank %d with size %d", ErrInvalidRank, h.Rank, c.size)
	case peers[h.Rank] != nil:
		err = fmt.Errorf("%w: rank %d", ErrDuplicateRank, h.Rank)
	}

	w := welcome{}
	if err != nil {
		w.Err = err.Error()
	}
	if encErr := p.enc.Encode(w); encErr != nil {
		return nil, fmt.Errorf("send welcome: %w", encErr)
	}
	if err != nil {
		return nil, err
	}

	if !stop() {
		return nil, ctx.Err()
	}
	conn.SetDeadline(time.Time{})
	p.rank = h.Rank
	return p, nil
}

// ReduceSum sends the worker's buffer to the coordinator, or on the
// coordinator sums every buffer in rank order and releases the workers.
func (c *TCPCommunicator) ReduceSum(ctx context.Context, data []float64) ([]float64, error) {
	if c.isClosed() {
		return nil, ErrClosed
	}
	if c.rank == Coordinator {
		return c.gather(ctx, data)
	}
	return nil, c.contribute(ctx, data)
}

func (c *TCPCommunicator) gather(ctx context.Context, data []float64) ([]float64, error) {
	if err := c.WaitForPeers(ctx); err != nil {
		return nil, err
	}

	stop := context.AfterFunc(ctx, func() {
		for _, p := range c.peers[1:] {
			p.conn.SetDeadline(time.Now())
		}
	})
	defer stop()

	byRank := make([][]float64, c.size)
	byRank[Coordinator] = data
	for _, p := range c.peers[1:] {
		var msg partial
		if err := p.dec.Decode(&msg); err != nil {
			return nil, c.wrapIOError(ctx, fmt.Errorf("cluster: receive from rank %d: %w", p.rank, err))
		}
		byRank[p.rank] = msg.Data
	}

	start := time.Now()
	sum, err := sumInRankOrder(byRank)
	reply := ack{}
	if err != nil {
		reply.Err = err.Error()
	}

	for _, p := range c.peers[1:] {
		if encErr := p.enc.Encode(reply); encErr != nil {
			return nil, c.wrapIOError(ctx, fmt.Errorf("cluster: release rank %d: %w", p.rank, encErr))
		}
	}
	logger.Debugf("summed %d values from %d ranks in %v", len(data), c.size, time.Since(start))

	return sum, err
}

func (c *TCPCommunicator) contribute(ctx context.Context, data []float64) error {
	p := c.coordinator
	stop := context.AfterFunc(ctx, func() { p.conn.SetDeadline(time.Now()) })
	defer stop()

	if err := p.enc.Encode(partial{Rank: c.rank, Data: data}); err != nil {
		return c.wrapIOError(ctx, fmt.Errorf("cluster: send partial: %w", err))
	}

	var reply ack
	if err := p.dec.Decode(&reply); err != nil {
		return c.wrapIOError(ctx, fmt.Errorf("cluster: wait for release: %w", err))
	}
	if reply.Err != "" {
		return fmt.Errorf("%w: %s", ErrPeerFailed, reply.Err)
	}
	return nil
}

// wrapIOError prefers the context's error when it caused the failure
func (c *TCPCommunicator) wrapIOError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Join(ctxErr, err)
	}
	if c.isClosed() {
		return errors.Join(ErrClosed, err)
	}
	return err
}

// Close shuts down the listener and every connection
func (c *TCPCommunicator) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	if c.listener != nil {
		if err := c.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			errs = append(errs, err)
		}
	}
	errs = append(errs, closePeers(c.peers))
	if c.coordinator != nil {
		errs = append(errs, c.coordinator.conn.Close())
	}
	return errors.Join(errs...)
}

func (c *TCPCommunicator) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func closePeers(peers []*peer) error {
	var errs []error
	for _, p := range peers {
		if p != nil {
			errs = append(errs, p.conn.Close())
		}
	}
	return errors.Join(errs...)
}
