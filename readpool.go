package mdguide

import (
	"context"
	"os"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps the resident workers. Reads beyond it run on
	// short-lived goroutines.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for request handling.
	cpuDivisor = 2
)

// ReadPool runs blocking file reads off the request goroutine so callers can
// stop waiting as soon as their context is done. A fixed set of workers,
// started lazily on the first Read, takes reads while any is idle. When all
// are busy the read gets its own goroutine instead of queueing, so a stalled
// read never delays an unrelated one.
type ReadPool struct {
	size    int
	jobs    chan readJob
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
	closed  bool
}

type readJob struct {
	path   string
	result chan readResult
}

type readResult struct {
	data []byte
	err  error
}

// NewReadPool creates a pool with n workers.
func NewReadPool(n int) *ReadPool {
	if n < 1 {
		n = 1
	}

	return &ReadPool{
		size: n,
		jobs: make(chan readJob),
		done: make(chan struct{}),
	}
}

// Read returns the contents of path. It returns when the read completes,
// ctx is done or the pool is closed.
func (p *ReadPool) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.start(); err != nil {
		return nil, err
	}

	// Buffered so a worker never blocks on a caller that gave up.
	job := readJob{path: path, result: make(chan readResult, 1)}

	select {
	case p.jobs <- job:
	case <-p.done:
		return nil, ErrPoolClosed
	default:
		if err := p.overflow(job); err != nil {
			return nil, err
		}
	}

	select {
	case res := <-job.result:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *ReadPool) start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}
	if p.started {
		return nil
	}
	p.started = true

	p.wg.Add(p.size)
	for range p.size {
		go p.worker()
	}
	return nil
}

// overflow runs job on a dedicated goroutine tracked by Close.
func (p *ReadPool) overflow(job readJob) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		job.run()
	}()
	return nil
}

func (p *ReadPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			job.run()
		case <-p.done:
			return
		}
	}
}

func (j readJob) run() {
	data, err := os.ReadFile(j.path) // #nosec G304 -- path validated by docpath
	j.result <- readResult{data: data, err: err}
}

// Close stops the workers and waits for in-flight reads, overflow ones
// included, to finish.
// Safe to call more than once.
func (p *ReadPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}

// Size returns the number of workers.
func (p *ReadPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the optimal pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
