package ledger

import (
	"context"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
)

var _ repository.SettingsRepository = (*SettingsRepositoryImpl)(nil)

type SettingsRepositoryImpl struct {
	base
}

func NewSettingsRepository(store repository.Store) repository.SettingsRepository {
	return &SettingsRepositoryImpl{base: base{store: store}}
}

// GetSettings decodes onto the defaults so fields missing from the stored
// document keep their default value
func (r *SettingsRepositoryImpl) GetSettings(ctx context.Context, accountID string, tx ...repository.Executor) (model.Settings, error) {
	settings := model.DefaultSettings()
	if _, err := r.load(ctx, repository.SettingsKey(accountID), &settings, tx...); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

func (r *SettingsRepositoryImpl) PutSettings(ctx context.Context, accountID string, settings model.Settings, tx ...repository.Executor) error {
	return r.save(ctx, repository.SettingsKey(accountID), settings, tx...)
}
