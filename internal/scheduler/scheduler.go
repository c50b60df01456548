package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/worker"
)

const (
	LogMsgJobScheduled     = "Job scheduled"
	LogMsgEnqueueFailed    = "Failed to enqueue scheduled job"
	LogMsgSchedulerStopped = "Scheduler stopped"
)

// Scheduler enqueues jobs on a worker pool at fixed intervals. A tick whose
// job cannot be queued is skipped rather than stacked up.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	once       sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	log := logger.FromContext(context.Background())
	log.Info(LogMsgJobScheduled, "job", name, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.workerPool.TryEnqueue(job); err != nil {
					log.Warn(LogMsgEnqueueFailed, "job", name, "error", err)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. Jobs already queued still run.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		close(s.quit)
		s.wg.Wait()
		logger.FromContext(context.Background()).Info(LogMsgSchedulerStopped)
	})
}
