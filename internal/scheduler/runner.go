// Package scheduler runs periodic background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"

	"home_energy_coach/platform/logger"

	"github.com/robfig/cron/v3"
)

// Job is one unit of scheduled work. The context is cancelled when the
// runner stops.
type Job func(ctx context.Context) error

// Runner executes registered jobs on their schedules until its context is
// cancelled. A job never overlaps with its own previous run.
type Runner struct {
	cron *cron.Cron
	log  *logger.Logger
	ctx  context.Context
	stop context.CancelFunc
}

// NewRunner creates an idle runner.
func NewRunner(log *logger.Logger) *Runner {
	ctx, stop := context.WithCancel(context.Background())
	return &Runner{
		cron: cron.New(),
		log:  log,
		ctx:  ctx,
		stop: stop,
	}
}

// Add registers job under name with a standard five-field cron spec.
func (r *Runner) Add(name, spec string, job Job) error {
	var running atomic.Bool
	var runs atomic.Int64
	_, err := r.cron.AddFunc(spec, func() {
		if !running.CompareAndSwap(false, true) {
			r.log.Warn("scheduled job still running, skipping", "job", name)
			return
		}
		defer running.Store(false)

		run := runs.Add(1)
		r.log.Info("scheduled job started", "job", name, "run", run)
		if err := job(r.ctx); err != nil {
			r.log.Error("scheduled job failed", "job", name, "run", run, "error", err)
			return
		}
		r.log.Info("scheduled job finished", "job", name, "run", run)
	})
	if err != nil {
		return fmt.Errorf("schedule %s %q: %w", name, spec, err)
	}
	return nil
}

// Run starts the schedule and blocks until ctx is done, then waits for
// running jobs to return.
func (r *Runner) Run(ctx context.Context) error {
	r.cron.Start()
	r.log.Info("scheduler started", "jobs", len(r.cron.Entries()))

	<-ctx.Done()

	r.stop()
	<-r.cron.Stop().Done()
	r.log.Info("scheduler stopped")
	return nil
}
