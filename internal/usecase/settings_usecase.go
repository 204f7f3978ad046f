package usecase

import (
	"context"
	"log/slog"

	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
)

type SettingsUsecase struct {
	settings repository.SettingsRepository
	log      *slog.Logger
}

func NewSettingsUsecase(settings repository.SettingsRepository, log *slog.Logger) *SettingsUsecase {
	return &SettingsUsecase{settings: settings, log: log}
}

func (u *SettingsUsecase) Get() model.Settings {
	return u.settings.Get()
}

func (u *SettingsUsecase) Update(ctx context.Context, patch model.SettingsPatch) model.Settings {
	s := u.settings.Update(patch)
	u.log.InfoContext(ctx, "Settings updated", "company", s.CompanyName, "email_notifications", s.EmailNotifications)
	return s
}
