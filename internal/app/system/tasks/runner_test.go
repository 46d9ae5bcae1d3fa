package tasks_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/seftonweb/southportlocal/internal/app/system/tasks"
	"go.uber.org/zap"
)

func TestRunnerRunsJobAtStart(t *testing.T) {
	runner := tasks.New(zap.NewNop())

	var runs atomic.Int32
	runner.Register(tasks.Job{
		Name:     "sweep",
		Interval: 100 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	runner.Start()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := runner.Stop(ctx); err != nil {
		t.Errorf("Stop: %v", err)
	}

	// The first run happens at Start, not one interval later.
	if runs.Load() < 1 {
		t.Errorf("job ran %d times, want at least 1", runs.Load())
	}
}

func TestRunnerStopTimesOutOnStuckJob(t *testing.T) {
	runner := tasks.New(zap.NewNop())

	sleeping := make(chan struct{})
	runner.Register(tasks.Job{
		Name:     "stuck",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			close(sleeping)
			// Deliberately ignores ctx so Stop has to give up.
			time.Sleep(5 * time.Second)
			return nil
		},
	})

	runner.Start()
	<-sleeping
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := runner.Stop(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Stop = %v, want DeadlineExceeded", err)
	}
}

func TestRunnerStopWaitsForFinishedJob(t *testing.T) {
	runner := tasks.New(zap.NewNop())

	done := make(chan struct{})
	runner.Register(tasks.Job{
		Name:     "quick",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			time.Sleep(10 * time.Millisecond)
			close(done)
			return nil
		},
	})

	runner.Start()
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := runner.Stop(ctx); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestRunnerMultipleJobs(t *testing.T) {
	runner := tasks.New(zap.NewNop())

	var a, b atomic.Int32
	runner.Register(tasks.Job{
		Name:     "classify",
		Interval: 50 * time.Millisecond,
		Run: func(ctx context.Context) error {
			a.Add(1)
			return nil
		},
	})
	runner.Register(tasks.Job{
		Name:     "cleanup",
		Interval: 50 * time.Millisecond,
		Run: func(ctx context.Context) error {
			b.Add(1)
			return nil
		},
	})

	runner.Start()
	time.Sleep(150 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := runner.Stop(ctx); err != nil {
		t.Errorf("Stop: %v", err)
	}

	if a.Load() < 1 {
		t.Errorf("classify ran %d times, want at least 1", a.Load())
	}
	if b.Load() < 1 {
		t.Errorf("cleanup ran %d times, want at least 1", b.Load())
	}
}

func TestRunnerRunOnce(t *testing.T) {
	runner := tasks.New(zap.NewNop())

	var runs atomic.Int32
	runner.Register(tasks.Job{
		Name:     "manual",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	// RunOnce works without Start.
	if err := runner.RunOnce(context.Background(), "manual"); err != nil {
		t.Errorf("RunOnce: %v", err)
	}
	if runs.Load() != 1 {
		t.Errorf("job ran %d times, want 1", runs.Load())
	}
}

func TestRunnerRunOnceUnknownName(t *testing.T) {
	runner := tasks.New(zap.NewNop())
	if err := runner.RunOnce(context.Background(), "no-such-job"); err != nil {
		t.Errorf("RunOnce for unknown job = %v, want nil", err)
	}
}

func TestRunnerStopCancelsJobContext(t *testing.T) {
	runner := tasks.New(zap.NewNop())

	cancelled := make(chan struct{})
	runner.Register(tasks.Job{
		Name:     "waiter",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			<-ctx.Done()
			close(cancelled)
			return ctx.Err()
		},
	})

	runner.Start()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := runner.Stop(ctx); err != nil {
		t.Errorf("Stop: %v", err)
	}

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Error("job context was not cancelled by Stop")
	}
}
