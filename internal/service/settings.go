package service

import (
	"context"
	"fmt"
	"lottery-engine/internal/events"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"lottery-engine/internal/scheduler"

	"github.com/rs/zerolog"
)

type SettingsServiceImpl struct {
	repos     *repository.Repositories
	clock     scheduler.Clock
	publisher events.Publisher
	logger    zerolog.Logger
}

func NewSettingsService(repos *repository.Repositories, clock scheduler.Clock, publisher events.Publisher, logger zerolog.Logger) SettingsService {
	return &SettingsServiceImpl{
		repos:     repos,
		clock:     clock,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *SettingsServiceImpl) GetSettings(ctx context.Context, accountID string) (model.Settings, error) {
	if accountID == "" {
		return model.Settings{}, model.ErrNotAuthenticated
	}
	settings, err := s.repos.Settings.GetSettings(ctx, accountID)
	if err != nil {
		return model.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, accountID string, patch model.SettingsPatch) (model.Settings, error) {
	if accountID == "" {
		return model.Settings{}, model.ErrNotAuthenticated
	}
	for _, d := range patch.FavoriteDigits {
		if !model.ValidDigit(d) {
			return model.Settings{}, fmt.Errorf("%w: favorite digit %d out of range", model.ErrValidation, d)
		}
	}
	for _, a := range patch.QuickBetAmounts {
		if a <= 0 {
			return model.Settings{}, fmt.Errorf("%w: quick bet amounts must be positive", model.ErrValidation)
		}
	}

	var updated model.Settings
	err := runInTransaction(ctx, s.repos.DB, s.logger, func(tx repository.Executor) error {
		if _, err := s.repos.Accounts.GetAccount(ctx, accountID, tx); err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		current, err := s.repos.Settings.GetSettings(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		updated = current.Apply(patch)
		return s.repos.Settings.PutSettings(ctx, accountID, updated, tx)
	})
	if err != nil {
		return model.Settings{}, err
	}

	publish(ctx, s.publisher, s.logger, events.Event{
		Name:      events.SettingsUpdate,
		AccountID: accountID,
		Timestamp: s.clock.Now(),
		Data:      map[string]any{"settings": updated},
	})
	return updated, nil
}
