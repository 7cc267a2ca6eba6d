package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	_ Scheduler = (*ManualScheduler)(nil)
	_ Clock     = (*ManualScheduler)(nil)
)

type manualJob struct {
	due  time.Time
	seq  int
	name string
	task Task
}

// ManualScheduler is a virtual clock. Nothing runs until Advance moves time
// past a task's due time.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	jobs   []*manualJob
	errs   []error
	logger zerolog.Logger
}

func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start, logger: zerolog.Nop()}
}

func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) Schedule(name string, delay time.Duration, task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.jobs = append(s.jobs, &manualJob{due: s.now.Add(delay), seq: s.seq, name: name, task: task})
}

// Advance moves the clock forward by d, running due tasks in due order.
// Tasks scheduled by a running task also run if they fall due within d.
// It returns the number of tasks run.
func (s *ManualScheduler) Advance(ctx context.Context, d time.Duration) int {
	s.mu.Lock()
	target := s.now.Add(d)
	ran := 0
	for {
		j := s.popDue(target)
		if j == nil {
			break
		}
		if j.due.After(s.now) {
			s.now = j.due
		}
		s.mu.Unlock()

		err := runTask(ctx, s.logger, j.name, j.task)

		s.mu.Lock()
		if err != nil {
			s.errs = append(s.errs, err)
		}
		ran++
	}
	if target.After(s.now) {
		s.now = target
	}
	s.mu.Unlock()
	return ran
}

// popDue removes the earliest job due at or before target; caller holds mu
func (s *ManualScheduler) popDue(target time.Time) *manualJob {
	sort.SliceStable(s.jobs, func(i, k int) bool {
		if !s.jobs[i].due.Equal(s.jobs[k].due) {
			return s.jobs[i].due.Before(s.jobs[k].due)
		}
		return s.jobs[i].seq < s.jobs[k].seq
	})
	if len(s.jobs) == 0 || s.jobs[0].due.After(target) {
		return nil
	}
	j := s.jobs[0]
	s.jobs = s.jobs[1:]
	return j
}

func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// PendingNames lists queued task names in due order
func (s *ManualScheduler) PendingNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	jobs := append([]*manualJob(nil), s.jobs...)
	sort.SliceStable(jobs, func(i, k int) bool {
		if !jobs[i].due.Equal(jobs[k].due) {
			return jobs[i].due.Before(jobs[k].due)
		}
		return jobs[i].seq < jobs[k].seq
	})
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.name
	}
	return names
}

// Errors returns the errors returned by tasks run so far
func (s *ManualScheduler) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errs...)
}
