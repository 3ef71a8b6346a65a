package batch

import (
	"sync"
	"sync/atomic"

	"github.com/botirk38/docsim/types"
)

// Pool runs submitted tasks on a fixed number of workers.
type Pool struct {
	tasks   chan func()
	wg      sync.WaitGroup
	quit    chan struct{}
	stopped atomic.Bool
	active  atomic.Int32
	logger  types.Logger
}

// NewPool starts size workers. A size below one starts a single worker.
func NewPool(size int, logger types.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{
		tasks:  make(chan func(), size*5),
		quit:   make(chan struct{}),
		logger: logger,
	}
	for range size {
		go p.worker()
	}
	return p
}

// Submit queues task, blocking while the queue is full.
func (p *Pool) Submit(task func()) error {
	if p.stopped.Load() {
		return ErrPoolStopped
	}
	p.wg.Add(1)
	if p.logger != nil {
		p.logger.Debug("submitting task", "queued", len(p.tasks), "active", p.active.Load())
	}
	select {
	case p.tasks <- func() {
		defer p.wg.Done()
		task()
	}:
		return nil
	case <-p.quit:
		p.wg.Done()
		return ErrPoolStopped
	}
}

func (p *Pool) worker() {
	for {
		select {
		case task := <-p.tasks:
			p.active.Add(1)
			task()
			p.active.Add(-1)
		case <-p.quit:
			return
		}
	}
}

// Wait blocks until every submitted task has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Stop waits for queued tasks and shuts the workers down.
func (p *Pool) Stop() {
	if p.stopped.Swap(true) {
		return
	}
	p.Wait()
	close(p.quit)
}
