package events

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

const (
	AccountOpened  = "account_opened"
	BetPlaced      = "bet_placed"
	BetResult      = "bet_result"
	DrawResult     = "draw_result"
	VipUpgrade     = "vip_upgrade"
	BalanceUpdate  = "balance_update"
	AutoBetStopped = "autobet_stopped"
	SettingsUpdate = "settings_update"
)

// Event is an analytics record or live broadcast. AccountID is empty for
// global events such as draw results.
type Event struct {
	Name      string         `json:"event"`
	AccountID string         `json:"account_id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogPublisher writes every event to the log
type LogPublisher struct {
	logger zerolog.Logger
}

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.logger.Info().
		Str("event", event.Name).
		Str("account_id", event.AccountID).
		Time("event_time", event.Timestamp).
		Interface("data", event.Data).
		Msg("Event published")
	return nil
}

// Multi fans an event out to every publisher and joins their errors
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards events
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
