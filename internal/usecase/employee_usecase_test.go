package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/model"
)

func TestEmployeeUsecase(t *testing.T) {
	f := newFixture(t)
	uc := NewEmployeeUsecase(f.users)

	f.addUser(t, "admin@co.com", "Admin", model.RoleAdmin)
	emp := f.addUser(t, "emp@co.com", "Emp", model.RoleEmployee)

	assert.Len(t, uc.List(), 2)

	got, err := uc.Get(emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emp", got.Name)

	_, err = uc.Get(99)
	assert.Equal(t, "Employee not found", apperror.From(err).Message)

	require.NoError(t, uc.Update(emp.ID, model.Profile{Name: "Emp Two", Position: "Dev"}))
	got, err = uc.Get(emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emp Two", got.Name)
	assert.Equal(t, "Dev", got.Position)

	assert.Equal(t, 404, apperror.From(uc.Update(99, model.Profile{})).Status())
}

func TestSettingsUsecase(t *testing.T) {
	f := newFixture(t)
	uc := NewSettingsUsecase(f.settings, f.log)

	assert.Equal(t, "DayFlow Inc.", uc.Get().CompanyName)

	currency := "EUR"
	got := uc.Update(context.Background(), model.SettingsPatch{Currency: &currency})
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, "DayFlow Inc.", got.CompanyName)
	assert.Equal(t, got, uc.Get())
}
