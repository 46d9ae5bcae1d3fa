// internal/app/system/tasks/runner.go
package tasks

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Job is a background task run repeatedly on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner owns one goroutine per registered job. Jobs run once immediately at
// Start and then on their interval until Stop.
type Runner struct {
	logger  *zap.Logger
	jobs    []Job
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	active  atomic.Int32 // jobs executing right now
	inRun   sync.Map     // names of jobs executing right now
}

// New creates an empty Runner.
func New(logger *zap.Logger) *Runner {
	return &Runner{logger: logger}
}

// Register adds a job. Call before Start.
func (r *Runner) Register(job Job) {
	r.jobs = append(r.jobs, job)
}

// Start launches every registered job.
func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	for _, job := range r.jobs {
		r.wg.Add(1)
		go r.loop(ctx, job)
	}

	r.logger.Info("task runner started", zap.Int("jobs", len(r.jobs)))
}

// Stop cancels all jobs and waits for in-flight runs to finish. When ctx
// expires first, the names of the jobs still executing are logged and
// ctx.Err() is returned.
func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("task runner stopped")
		return nil
	case <-ctx.Done():
		var pending []string
		r.inRun.Range(func(key, _ any) bool {
			pending = append(pending, key.(string))
			return true
		})
		r.logger.Warn("task runner shutdown timed out",
			zap.Strings("still_running", pending),
			zap.Int32("active", r.active.Load()))
		return ctx.Err()
	}
}

func (r *Runner) loop(ctx context.Context, job Job) {
	defer r.wg.Done()

	// First run happens at startup, not one interval in.
	r.invoke(ctx, job)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("job stopped", zap.String("job", job.Name))
			return
		case <-ticker.C:
			r.invoke(ctx, job)
		}
	}
}

func (r *Runner) invoke(ctx context.Context, job Job) {
	r.active.Add(1)
	r.inRun.Store(job.Name, struct{}{})
	defer func() {
		r.active.Add(-1)
		r.inRun.Delete(job.Name)
	}()

	start := time.Now()
	r.logger.Debug("job starting", zap.String("job", job.Name))

	if err := job.Run(ctx); err != nil {
		// Cancellation during shutdown is expected, not a failure.
		if ctx.Err() != nil {
			r.logger.Debug("job cancelled during shutdown",
				zap.String("job", job.Name),
				zap.Duration("duration", time.Since(start)))
			return
		}
		r.logger.Error("job failed",
			zap.String("job", job.Name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return
	}

	r.logger.Debug("job completed",
		zap.String("job", job.Name),
		zap.Duration("duration", time.Since(start)))
}

// RunOnce executes the named job immediately. Used by tests and manual
// triggers; unknown names are a no-op.
func (r *Runner) RunOnce(ctx context.Context, name string) error {
	for _, job := range r.jobs {
		if job.Name == name {
			return job.Run(ctx)
		}
	}
	return nil
}
