package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var _ Scheduler = (*TimerScheduler)(nil)

type job struct {
	name string
	task Task
}

// TimerScheduler arms a timer per task and runs due tasks on a single goroutine
type TimerScheduler struct {
	queue    chan job
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup

	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	stopped bool
}

func NewTimerScheduler(queueSize int, logger zerolog.Logger) *TimerScheduler {
	return &TimerScheduler{
		queue:    make(chan job, queueSize),
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
		timers:   make(map[*time.Timer]struct{}),
	}
}

func (s *TimerScheduler) Schedule(name string, delay time.Duration, task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		s.logger.Warn().Str("task", name).Msg("Scheduler stopped, task dropped")
		return
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, t)
		stopped := s.stopped
		s.mu.Unlock()
		if stopped {
			return
		}

		select {
		case s.queue <- job{name: name, task: task}:
		case <-s.stopChan:
		}
	})
	s.timers[t] = struct{}{}
}

// Pending reports armed timers that have not fired yet
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *TimerScheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.logger.Info().Msg("Scheduler started")

		for {
			select {
			case j := <-s.queue:
				s.logger.Debug().Str("task", j.name).Msg("Running scheduled task")
				_ = runTask(ctx, s.logger, j.name, j.task)
			case <-s.stopChan:
				s.logger.Info().Msg("Scheduler stopping")
				return
			case <-ctx.Done():
				s.logger.Info().Msg("Scheduler stopping (context done)")
				return
			}
		}
	}()
}

// Stop disarms pending timers and waits for the running task to finish
func (s *TimerScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		for t := range s.timers {
			t.Stop()
		}
		s.timers = make(map[*time.Timer]struct{})
		s.mu.Unlock()

		close(s.stopChan)
	})
	s.wg.Wait()
}
