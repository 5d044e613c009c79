package cron

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Job represents a scheduled job
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

type entry struct {
	job     Job
	id      cron.EntryID
	ctx     context.Context
	cancel  context.CancelFunc
	running atomic.Bool
}

// Scheduler runs interval jobs on top of robfig/cron. Jobs can be added and
// removed while it runs; removing a job cancels the context its runs see.
type Scheduler struct {
	cron    *cron.Cron
	jobs    map[string]*entry
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// NewScheduler creates a new cron scheduler
func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	logger := slogLogger{}
	return &Scheduler{
		cron:   cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger))),
		jobs:   make(map[string]*entry),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob adds a job to the scheduler, replacing any job with the same name.
// A started scheduler runs the job immediately, then every interval.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(name)

	jobCtx, cancel := context.WithCancel(s.ctx)
	e := &entry{
		job:    Job{Name: name, Interval: interval, Fn: fn},
		ctx:    jobCtx,
		cancel: cancel,
	}
	e.id = s.cron.Schedule(cron.Every(interval), cron.FuncJob(func() { s.executeJob(e) }))
	s.jobs[name] = e
	slog.Debug("Cron job registered", "name", name, "interval", interval)

	if s.started {
		s.runNow(e)
	}
}

// RemoveJob unschedules a job and cancels its in-flight run.
func (s *Scheduler) RemoveJob(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(name)
}

func (s *Scheduler) removeLocked(name string) bool {
	e, ok := s.jobs[name]
	if !ok {
		return false
	}
	s.cron.Remove(e.id)
	e.cancel()
	delete(s.jobs, name)
	slog.Debug("Cron job removed", "name", name)
	return true
}

// HasJob reports whether a job with this name is scheduled
func (s *Scheduler) HasJob(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[name]
	return ok
}

// JobCount returns the number of scheduled jobs
func (s *Scheduler) JobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true
	s.cron.Start()

	for _, e := range s.jobs {
		s.runNow(e)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop gracefully stops all scheduled jobs
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	<-s.cron.Stop().Done()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) runNow(e *entry) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.executeJob(e)
	}()
}

// executeJob executes a job and logs results. Overlapping runs of the same job are skipped.
func (s *Scheduler) executeJob(e *entry) {
	if e.ctx.Err() != nil {
		return
	}
	if !e.running.CompareAndSwap(false, true) {
		slog.Debug("Cron job still running, skipped", "name", e.job.Name)
		return
	}
	defer e.running.Store(false)

	start := time.Now()
	slog.Debug("Cron job starting", "name", e.job.Name)

	err := e.job.Fn(e.ctx)
	switch {
	case err == nil:
		slog.Debug("Cron job completed", "name", e.job.Name, "duration", time.Since(start))
	case errors.Is(err, context.Canceled):
		slog.Debug("Cron job cancelled", "name", e.job.Name)
	default:
		slog.Error("Cron job failed", "name", e.job.Name, "error", err, "duration", time.Since(start))
	}
}

// RunOnce runs all jobs once (useful for testing)
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	jobs := make([]Job, 0, len(s.jobs))
	for _, e := range s.jobs {
		jobs = append(jobs, e.job)
	}
	s.mu.Unlock()

	for _, job := range jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}

// slogLogger adapts robfig/cron logging to slog.
type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
