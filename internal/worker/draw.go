package worker

import (
	"context"
	"errors"
	"fmt"
	"lottery-engine/internal/model"
	"lottery-engine/internal/scheduler"
	"lottery-engine/internal/service"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DrawWorker watches the draw calendar and hands each due draw to the
// scheduler, so draws run on the same goroutine as Mini resolutions and
// auto-bet steps. Mini bets resolve on their own timers.
type DrawWorker struct {
	service  service.DrawService
	sched    scheduler.Scheduler
	kinds    []model.DrawKind
	interval time.Duration
	clock    scheduler.Clock
	logger   zerolog.Logger
	next     map[model.DrawKind]time.Time
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewDrawWorker(svc service.DrawService, sched scheduler.Scheduler, clock scheduler.Clock, interval time.Duration, logger zerolog.Logger) *DrawWorker {
	return &DrawWorker{
		service:  svc,
		sched:    sched,
		kinds:    []model.DrawKind{model.DrawMain, model.DrawWeekend},
		interval: interval,
		clock:    clock,
		logger:   logger,
		next:     make(map[model.DrawKind]time.Time),
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *DrawWorker) Start(ctx context.Context) {
	w.plan()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Draw worker started")

		for {
			select {
			case <-ticker.C:
				w.tick(ctx)
			case <-w.stopChan:
				w.logger.Info().Msg("Draw worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Draw worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *DrawWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

// plan records the upcoming draw time of every kind
func (w *DrawWorker) plan() {
	for _, kind := range w.kinds {
		next, err := w.service.NextDrawTime(kind)
		if err != nil {
			w.logger.Error().Err(err).Str("draw_kind", kind.String()).Msg("Failed to compute next draw")
			continue
		}
		w.next[kind] = next
		w.logger.Debug().Str("draw_kind", kind.String()).Time("next_draw", next).Msg("Draw planned")
	}
}

// tick queues every draw whose planned time has passed, then plans the next one
func (w *DrawWorker) tick(ctx context.Context) {
	now := w.clock.Now()
	for _, kind := range w.kinds {
		due, ok := w.next[kind]
		if !ok || now.Before(due) {
			continue
		}

		w.logger.Debug().Str("draw_kind", kind.String()).Time("due", due).Msg("Queueing draw")
		w.sched.Schedule("draw:"+kind.String(), 0, w.drawTask(kind))

		next, err := w.service.NextDrawTime(kind)
		if err != nil {
			w.logger.Error().Err(err).Str("draw_kind", kind.String()).Msg("Failed to compute next draw")
			delete(w.next, kind)
			continue
		}
		w.next[kind] = next
	}
}

// drawTask runs one draw; failures are logged by the scheduler
func (w *DrawWorker) drawTask(kind model.DrawKind) scheduler.Task {
	return func(ctx context.Context) error {
		result, err := w.service.SimulateDraw(ctx, kind)
		if errors.Is(err, model.ErrNoPendingBets) {
			w.logger.Debug().Str("draw_kind", kind.String()).Msg("Draw skipped, no pending bets")
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s draw: %w", kind, err)
		}

		w.logger.Info().
			Str("draw_kind", kind.String()).
			Int("winning_digit", result.WinningDigit).
			Int("resolved_bets", result.ResolvedBets).
			Msg("Draw finished")
		return nil
	}
}
