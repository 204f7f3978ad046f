package usecase

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
)

type fixture struct {
	db         *repository.DB
	users      repository.UserRepository
	attendance repository.AttendanceRepository
	leaves     repository.LeaveRepository
	payroll    repository.PayrollRepository
	settings   repository.SettingsRepository
	dashboard  repository.DashboardRepository
	tokens     *auth.TokenService
	log        *slog.Logger

	mu  sync.Mutex
	now time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := repository.NewDB()
	f := &fixture{
		db:         db,
		users:      repository.NewUserRepository(db),
		attendance: repository.NewAttendanceRepository(db),
		leaves:     repository.NewLeaveRepository(db),
		payroll:    repository.NewPayrollRepository(db),
		settings:   repository.NewSettingsRepository(db),
		dashboard:  repository.NewDashboardRepository(db),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Date(2026, 1, 8, 9, 0, 0, 0, time.Local),
	}
	f.tokens = auth.NewTokenService("test-secret", auth.DefaultTokenTTL).WithClock(f.clock())
	return f
}

func (f *fixture) clock() Clock {
	return func() time.Time {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.now
	}
}

func (f *fixture) advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func (f *fixture) addUser(t *testing.T, email, name, role string) model.User {
	t.Helper()
	u := model.User{Email: email, Name: name, Role: role}
	require.NoError(t, f.users.Create(&u))
	return u
}

func identity(u model.User) auth.Identity {
	return auth.Identity{ID: u.ID, Email: u.Email, Role: u.Role}
}
