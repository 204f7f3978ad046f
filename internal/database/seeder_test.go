package database

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
)

func TestSeedAll(t *testing.T) {
	db := repository.NewDB()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, SeedAll(db, log))
	require.NoError(t, SeedAll(db, log))

	users := repository.NewUserRepository(db)
	all := users.GetAll()
	require.Len(t, all, 2)

	admin, err := users.FindByEmail("admin@dayflow.io")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(admin.Password, "admin123"))

	emp, err := users.FindByEmail("employee@dayflow.io")
	require.NoError(t, err)
	assert.Equal(t, model.RoleEmployee, emp.Role)
	assert.True(t, auth.CheckPassword(emp.Password, "employee123"))
}
