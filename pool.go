package adaptordata

import (
	"context"

	"github.com/jackc/puddle/v2"
)

// runnerSlot is a unit of session concurrency. Holding a slot is the
// right to run one adaptor session (and, for command sources, one
// subprocess) at a time.
type runnerSlot struct{}

// runnerPool bounds how many sessions run concurrently, with
// context-aware waiting when the limit is reached.
type runnerPool struct {
	pool *puddle.Pool[*runnerSlot]
}

func newRunnerPool(maxSize int32) (*runnerPool, error) {
	pool, err := puddle.NewPool(&puddle.Config[*runnerSlot]{
		Constructor: func(ctx context.Context) (*runnerSlot, error) {
			return &runnerSlot{}, nil
		},
		Destructor: func(*runnerSlot) {},
		MaxSize:    maxSize,
	})
	if err != nil {
		return nil, err
	}
	return &runnerPool{pool: pool}, nil
}

func (p *runnerPool) acquire(ctx context.Context) (*puddle.Resource[*runnerSlot], error) {
	return p.pool.Acquire(ctx)
}

func (p *runnerPool) close() {
	p.pool.Close()
}

// RunnerStats is a snapshot of session concurrency.
type RunnerStats struct {
	ActiveSessions    int32  // sessions currently running
	MaxSessions       int32  // configured concurrency limit
	AcquireCount      uint64 // total slot acquisitions
	AcquireWaitCount  uint64 // acquisitions that had to wait for a free slot
	AcquireWaitTimeNs uint64 // total nanoseconds spent waiting
}

func (p *runnerPool) stats() RunnerStats {
	s := p.pool.Stat()
	return RunnerStats{
		ActiveSessions:    s.AcquiredResources(),
		MaxSessions:       s.MaxResources(),
		AcquireCount:      uint64(s.AcquireCount()),
		AcquireWaitCount:  uint64(s.EmptyAcquireCount()),
		AcquireWaitTimeNs: uint64(s.EmptyAcquireWaitTime().Nanoseconds()),
	}
}
