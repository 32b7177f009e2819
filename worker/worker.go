package worker

import (
	"context"
	"io"
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Pool runs submitted functions on a fixed number of goroutines. A function
// that panics is reported to sentry and logged; the worker keeps running.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup
	log   *logrus.Logger

	closeOnce sync.Once

	completed atomic.Uint64
	panicked  atomic.Uint64
}

// NewPool starts a pool of the given size. A non-positive size uses one worker
// per CPU.
func NewPool(size int, log *logrus.Logger) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	p := &Pool{queue: make(chan func(), size), log: log}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.queue {
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Inc()
			sentry.CurrentHub().Recover(r)
			p.log.WithField("panic", r).Error("worker recovered from panic")
		}
		p.completed.Inc()
	}()
	f()
}

// Submit queues f, blocking while every worker is busy. It returns the
// context's error if ctx is cancelled first.
func (p *Pool) Submit(ctx context.Context, f func()) error {
	select {
	case p.queue <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work and waits for queued functions to finish.
// Submit must not be called after Close.
func (p *Pool) Close() {
	p.closeOnce.Do(func() { close(p.queue) })
	p.wg.Wait()
}

// Completed returns the number of functions that have finished, including
// those that panicked.
func (p *Pool) Completed() uint64 {
	return p.completed.Load()
}

// Panicked returns the number of functions that panicked.
func (p *Pool) Panicked() uint64 {
	return p.panicked.Load()
}
