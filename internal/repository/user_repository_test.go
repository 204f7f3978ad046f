package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayflow-backend/internal/model"
)

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepository(NewDB())

	a := &model.User{Email: "a@x.io", Name: "A", Role: model.RoleEmployee}
	b := &model.User{Email: "b@x.io", Name: "B", Role: model.RoleAdmin}
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)
}

func TestUserRepository_DuplicateEmailDoesNotConsumeID(t *testing.T) {
	repo := NewUserRepository(NewDB())

	require.NoError(t, repo.Create(&model.User{Email: "a@x.io"}))
	err := repo.Create(&model.User{Email: "a@x.io"})
	assert.ErrorIs(t, err, ErrEmailExists)

	c := &model.User{Email: "c@x.io"}
	require.NoError(t, repo.Create(c))
	assert.Equal(t, uint(2), c.ID)
	assert.Len(t, repo.GetAll(), 2)
}

func TestUserRepository_EmailIsCaseSensitive(t *testing.T) {
	repo := NewUserRepository(NewDB())

	require.NoError(t, repo.Create(&model.User{Email: "a@x.io"}))
	require.NoError(t, repo.Create(&model.User{Email: "A@x.io"}))

	_, err := repo.FindByEmail("A@X.IO")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUserRepository_FindReturnsCopies(t *testing.T) {
	repo := NewUserRepository(NewDB())
	require.NoError(t, repo.Create(&model.User{Email: "a@x.io", Name: "Ann"}))

	u, err := repo.FindByID(1)
	require.NoError(t, err)
	u.Name = "changed"

	again, err := repo.FindByEmail("a@x.io")
	require.NoError(t, err)
	assert.Equal(t, "Ann", again.Name)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	repo := NewUserRepository(NewDB())
	require.NoError(t, repo.Create(&model.User{Email: "a@x.io", Name: "Ann", Phone: "123"}))

	err := repo.UpdateProfile(1, model.Profile{Name: "Ann B", Department: "HR"})
	require.NoError(t, err)

	u, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Ann B", u.Name)
	assert.Equal(t, "HR", u.Department)
	assert.Empty(t, u.Phone)

	assert.ErrorIs(t, repo.UpdateProfile(42, model.Profile{}), ErrRecordNotFound)
}
