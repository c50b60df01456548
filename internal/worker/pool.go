package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/TextRealm_Go/internal/logger"
)

// ErrPoolStopped is returned when enqueueing after Stop
var ErrPoolStopped = errors.New("worker pool stopped")

// ErrQueueFull is returned by TryEnqueue when no slot is free
var ErrQueueFull = errors.New("worker queue full")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool represents a worker pool. Failed jobs are logged and handed to the
// error hook; they are never retried.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	onError  func(err error)

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// OnError installs a hook called for every failed job
func (p *Pool) OnError(fn func(err error)) {
	p.onError = fn
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	logger.FromContext(context.Background()).Info(LogMsgPoolStarted, "workers", p.workers)
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			// Finish whatever is already queued
			for {
				select {
				case job := <-p.jobQueue:
					p.run(job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) run(job Job) {
	ctx := context.Background()
	defer func() {
		if rec := recover(); rec != nil {
			logger.FromContext(ctx).Error(LogMsgJobPanicked, "panic", rec)
			p.fail(fmt.Errorf("job panicked: %v", rec))
		}
	}()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
		p.fail(err)
	}
}

func (p *Pool) fail(err error) {
	if p.onError != nil {
		p.onError(err)
	}
}

// Enqueue adds a job to the queue, blocking while it is full
func (p *Pool) Enqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	p.jobQueue <- job
	return nil
}

// TryEnqueue adds a job without blocking. Callers holding locks the jobs
// themselves take must use this instead of Enqueue.
func (p *Pool) TryEnqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	select {
	case p.jobQueue <- job:
		return nil
	default:
		logger.FromContext(context.Background()).Warn(LogMsgQueueFull)
		return ErrQueueFull
	}
}

// Stop rejects new jobs, drains the queue and waits for the workers
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	logger.FromContext(context.Background()).Info(LogMsgPoolDraining, "queued", len(p.jobQueue))
	close(p.quit)
	p.wg.Wait()
	logger.FromContext(context.Background()).Info(LogMsgPoolStopped)
}
