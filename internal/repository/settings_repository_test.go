package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dayflow-backend/internal/model"
)

func TestSettingsRepository_ShallowMerge(t *testing.T) {
	repo := NewSettingsRepository(NewDB())
	assert.Equal(t, model.DefaultSettings(), repo.Get())

	name := "Acme"
	off := false
	got := repo.Update(model.SettingsPatch{CompanyName: &name, EmailNotifications: &off})

	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, "UTC", got.Timezone)
	assert.Equal(t, "USD", got.Currency)
	assert.False(t, got.EmailNotifications)
	assert.Equal(t, got, repo.Get())
}
