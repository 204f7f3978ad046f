package repository

import (
	"dayflow-backend/internal/model"
)

type SettingsRepository interface {
	Get() model.Settings
	Update(patch model.SettingsPatch) model.Settings
}

type settingsRepository struct {
	db *DB
}

func NewSettingsRepository(db *DB) SettingsRepository {
	return &settingsRepository{db}
}

func (r *settingsRepository) Get() model.Settings {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.settings
}

func (r *settingsRepository) Update(patch model.SettingsPatch) model.Settings {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.settings = r.db.settings.Apply(patch)
	return r.db.settings
}
