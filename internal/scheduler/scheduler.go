package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Task is a unit of deferred work. Returned errors are logged, never retried.
type Task func(ctx context.Context) error

// Scheduler runs tasks after a delay, one at a time
type Scheduler interface {
	Schedule(name string, delay time.Duration, task Task)
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// runTask executes a task, turning a panic into an error so one bad task
// cannot take the scheduler loop down
func runTask(ctx context.Context, logger zerolog.Logger, name string, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panicked: %v", name, r)
		}
		if err != nil {
			logger.Error().Err(err).Str("task", name).Msg("Scheduled task failed")
		}
	}()

	return task(ctx)
}
