package core

import (
	"context"
	"runtime"
	"sync"

	"github.com/zeebo/errs"

	"github.com/ib-77/outcome/internal/logging"
)

var (
	Error = errs.Class("core")

	ErrPoolClosed = Error.New("pool closed")
)

// Scheduler runs submitted jobs asynchronously. Submit must run job at most
// once and must not run it when an error is returned.
type Scheduler interface {
	Submit(ctx context.Context, job func()) error
}

// GoScheduler runs every job on its own goroutine.
type GoScheduler struct{}

func (GoScheduler) Submit(ctx context.Context, job func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	go job()
	return nil
}

// Pool runs jobs on a fixed number of lines.
type Pool struct {
	jobs chan func()
	log  *logging.Logger
	wg   sync.WaitGroup

	mu         sync.Mutex
	closed     bool
	closing    chan struct{}
	submitting sync.WaitGroup
}

// NewPool starts a pool. The line count defaults to the context's worker
// options, then to the number of CPUs.
func NewPool(ctx context.Context, opts ...PoolOption) *Pool {
	cfg := poolConfig{
		lines: GetWorkerMaxCount(ctx, runtime.NumCPU()),
		log:   logging.FromContext(ctx),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.lines < 1 {
		cfg.lines = 1
	}
	if cfg.queueSize < 0 {
		cfg.queueSize = 0
	}

	p := &Pool{
		jobs:    make(chan func(), cfg.queueSize),
		log:     cfg.log,
		closing: make(chan struct{}),
	}

	for line := range cfg.lines {
		p.wg.Add(1)
		go Locomotive(line, p.jobs, p.log, &p.wg)
	}

	p.log.Debug("pool started", logging.Int(logging.Lines, cfg.lines))
	return p
}

// Submit blocks until a line or queue slot accepts the job, the pool starts
// closing or ctx is done.
func (p *Pool) Submit(ctx context.Context, job func()) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.submitting.Add(1)
	p.mu.Unlock()
	defer p.submitting.Done()

	select {
	case p.jobs <- job:
		return nil
	case <-p.closing:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs and waits for accepted ones to finish. Pending
// Submit calls return ErrPoolClosed. It is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	first := !p.closed
	if first {
		p.closed = true
		close(p.closing)
	}
	p.mu.Unlock()

	if first {
		// no sender may be left on jobs when it is closed
		p.submitting.Wait()
		close(p.jobs)
	}

	p.wg.Wait()
	p.log.Debug("pool closed")
}
