// Package parallel provides a small bounded worker pool used to fan
// independent per-meeting work (such as the node consistency filters)
// out across goroutines with backpressure on submission.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned by Submit after Shutdown has begun.
var ErrPoolShutdown = errors.New("worker pool is shut down")

// Pool runs submitted tasks on a fixed number of worker goroutines.
// The task channel is buffered so a burst of submissions does not spin
// up unbounded goroutines; once the buffer fills, Submit blocks until a
// worker frees up or the context is done.
type Pool struct {
	tasks    chan func()
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewPool creates a pool with the given number of workers. A
// non-positive count defaults to the number of CPUs.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		tasks:    make(chan func(), workers*2),
		shutdown: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.tasks:
			if task != nil {
				task()
			}
		case <-p.shutdown:
			// Drain anything already queued before exiting, so an
			// accepted task always runs.
			for {
				select {
				case task := <-p.tasks:
					if task != nil {
						task()
					}
				default:
					return
				}
			}
		}
	}
}

// Submit hands a task to the pool. It blocks while the buffer is full
// and fails if the context is cancelled or the pool shuts down first.
// A task accepted by Submit is guaranteed to run.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case <-p.shutdown:
		return ErrPoolShutdown
	default:
	}
	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdown:
		return ErrPoolShutdown
	}
}

// Shutdown stops the workers after any queued tasks finish and waits
// for them to exit. Safe to call more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdown)
	})
	p.wg.Wait()
}
