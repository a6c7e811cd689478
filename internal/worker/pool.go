package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Submit after Close
var ErrClosed = errors.New("worker pool closed")

// ErrQueueFull is returned by Submit when the queue has no free slot
var ErrQueueFull = errors.New("worker queue full")

// Task is a unit of background work
type Task func(ctx context.Context)

// Pool runs tasks from a bounded queue on a fixed number of goroutines.
// Submit never blocks the caller.
type Pool struct {
	mu     sync.RWMutex
	tasks  chan Task
	closed bool
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool starts workers goroutines consuming a queue of size queueSize
func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for task := range p.tasks {
		task(p.ctx)
	}
}

// Submit enqueues task without waiting
func (p *Pool) Submit(task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}
	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
// If ctx expires first, running tasks see their context cancelled.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		return ctx.Err()
	}
}
