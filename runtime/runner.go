package runtime

import (
	"chat-metrics/contract"
	"chat-metrics/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Runner executes a batch of tasks on a bounded pool of goroutines.
// Each task runs under its own recover: a failing or panicking task is
// reported under its name and never prevents the others from completing.
type Runner struct {
	log     *slog.Logger
	workers int
}

func NewRunner(log *slog.Logger, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{log: log, workers: workers}
}

// Run blocks until every started task returned.
// Tasks not yet started when ctx is canceled are reported with ctx.Err().
func (r *Runner) Run(ctx context.Context, tasks ...contract.Task) map[string]error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures = make(map[string]error)
		slots    = make(chan struct{}, r.workers)
	)
	fail := func(name string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failures[name] = err
	}

	for _, task := range tasks {
		if ctx.Err() != nil {
			fail(task.Name(), ctx.Err())
			continue
		}
		select {
		case <-ctx.Done():
			fail(task.Name(), ctx.Err())
			continue
		case slots <- struct{}{}:
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-slots }()
			if err := r.safeRun(ctx, task); err != nil {
				r.log.Warn("Task failed", "name", task.Name(), "error", err)
				fail(task.Name(), err)
				return
			}
			r.log.Debug("Task finished", "name", task.Name())
		}()
	}
	wg.Wait()
	return failures
}

func (r *Runner) safeRun(ctx context.Context, task contract.Task) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", errors.ErrAggregatorPanic, rec)
		}
	}()
	return task.Run(ctx)
}
