package analyzer

import (
	"sync"
	"sync/atomic"
)

// parallelRun bounds file-level concurrency within one directory and joins
// all in-flight work before the directory result is assembled. After a
// failure no further work is scheduled, but running analyses drain normally
// so no partially populated node escapes.
type parallelRun struct {
	sem      chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
	mu       sync.Mutex
	firstErr error
}

func newParallelRun(workers int) *parallelRun {
	return &parallelRun{sem: make(chan struct{}, workers)}
}

// schedule reserves a worker slot. It returns false once a failure was
// recorded, signalling the caller to stop submitting work.
func (p *parallelRun) schedule() bool {
	if p.stopped.Load() {
		return false
	}
	p.wg.Add(1)
	p.sem <- struct{}{}
	return true
}

func (p *parallelRun) done() {
	<-p.sem
	p.wg.Done()
}

func (p *parallelRun) fail(err error) {
	p.stopped.Store(true)
	p.mu.Lock()
	if p.firstErr == nil {
		p.firstErr = err
	}
	p.mu.Unlock()
}

// wait joins all scheduled work and returns the recorded failure, if any.
func (p *parallelRun) wait() error {
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.firstErr
}
