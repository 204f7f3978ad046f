package routes

import (
	"log/slog"
	"time"

	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/metrics"
	"dayflow-backend/internal/notify"
	"dayflow-backend/internal/repository"
	"dayflow-backend/internal/usecase"
)

// Deps is everything the route setup functions need to build handlers.
// Metrics, Notifier and Now may be left nil.
type Deps struct {
	DB       *repository.DB
	Tokens   *auth.TokenService
	Metrics  *metrics.Metrics
	Notifier notify.LeaveNotifier
	Log      *slog.Logger
	Now      func() time.Time
}

func (d Deps) clock() usecase.Clock {
	return d.Now
}

func (d Deps) logger() *slog.Logger {
	if d.Log == nil {
		return slog.Default()
	}
	return d.Log
}
