package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
)

// demoUsers are the accounts created when demo seeding is on.
var demoUsers = []struct {
	user     model.User
	password string
}{
	{
		user: model.User{
			Email:      "admin@dayflow.io",
			Name:       "Administrator",
			Role:       model.RoleAdmin,
			Department: "HR",
			Position:   "HR Manager",
		},
		password: "admin123",
	},
	{
		user: model.User{
			Email:      "employee@dayflow.io",
			Name:       "Demo Employee",
			Role:       model.RoleEmployee,
			Department: "Engineering",
			Position:   "Software Engineer",
		},
		password: "employee123",
	},
}

// SeedAll creates the demo accounts. Accounts that already exist are left
// untouched, so it is safe to call more than once.
func SeedAll(db *repository.DB, log *slog.Logger) error {
	users := repository.NewUserRepository(db)

	for _, demo := range demoUsers {
		if _, err := users.FindByEmail(demo.user.Email); err == nil {
			continue
		}

		hashed, err := auth.HashPassword(demo.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", demo.user.Email, err)
		}

		u := demo.user
		u.Password = hashed
		u.CreatedAt = time.Now()
		if err = users.Create(&u); err != nil && !errors.Is(err, repository.ErrEmailExists) {
			return fmt.Errorf("seed %s: %w", u.Email, err)
		}
		log.Info("Seeded demo user", "email", u.Email, "role", u.Role)
	}
	return nil
}
