package worker

import (
	"context"
	"sync"
)

// Task is background work such as an audit write or an event publish. The
// context is cancelled when the pool stops.
type Task func(ctx context.Context)

// Pool runs tasks on a fixed number of goroutines.
type Pool interface {
	// Submit queues t and reports whether it was accepted. It never blocks
	// once the pool has been stopped.
	Submit(Task) bool
	Stop()
}

// NewPool creates a pool with n workers and a queue of the given size.
// n<=0 defaults to 1, queue<0 to 0.
func NewPool(n, queue int) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &pool{
		jobs:   make(chan Task, queue),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.run()
	}
	return p
}

type pool struct {
	jobs   chan Task
	done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func (p *pool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job != nil {
			job(p.ctx)
		}
	}
}

func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	case <-p.done:
		return false
	}
}

// Stop drains queued tasks and waits for the workers to exit.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
	close(p.done)
}
