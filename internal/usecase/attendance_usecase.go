package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/metrics"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
)

// AttendanceFilter narrows an attendance listing. Empty fields match all.
type AttendanceFilter struct {
	UserID    *uint
	StartDate string
	EndDate   string
}

type AttendanceUsecase struct {
	attendance repository.AttendanceRepository
	metrics    *metrics.Metrics
	log        *slog.Logger
	now        Clock
}

func NewAttendanceUsecase(
	attendance repository.AttendanceRepository,
	m *metrics.Metrics,
	log *slog.Logger,
	now Clock,
) *AttendanceUsecase {
	return &AttendanceUsecase{attendance: attendance, metrics: m, log: log, now: now.orDefault()}
}

func (u *AttendanceUsecase) CheckIn(ctx context.Context, userID uint) (model.Attendance, error) {
	record, err := u.attendance.CheckIn(userID, today(u.now), u.now())
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyCheckedIn) {
			return model.Attendance{}, apperror.Conflict("Already checked in today")
		}
		return model.Attendance{}, apperror.Internal("Check-in failed", err)
	}

	u.metrics.IncCheckIn()
	u.log.DebugContext(ctx, "Checked in", "user_id", userID, "date", record.Date)
	return record, nil
}

func (u *AttendanceUsecase) CheckOut(ctx context.Context, userID uint) (model.Attendance, error) {
	record, err := u.attendance.CheckOut(userID, today(u.now), u.now())
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveCheckIn) {
			return model.Attendance{}, apperror.Conflict("No active check-in found")
		}
		return model.Attendance{}, apperror.Internal("Check-out failed", err)
	}

	u.metrics.IncCheckOut()
	u.log.DebugContext(ctx, "Checked out", "user_id", userID, "hours_worked", record.HoursWorkedLabel())
	return record, nil
}

// List returns the records visible to the caller, newest date first.
// Employees only ever see their own records; the UserID filter applies to
// admins.
func (u *AttendanceUsecase) List(caller auth.Identity, f AttendanceFilter) []model.Attendance {
	var records []model.Attendance
	switch {
	case !caller.IsAdmin():
		records = u.attendance.GetByUserID(caller.ID)
	case f.UserID != nil:
		records = u.attendance.GetByUserID(*f.UserID)
	default:
		records = u.attendance.GetAll()
	}

	filtered := make([]model.Attendance, 0, len(records))
	for _, a := range records {
		if inDateRange(a.Date, f.StartDate, f.EndDate) {
			filtered = append(filtered, a)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})
	return filtered
}

// inDateRange compares YYYY-MM-DD strings; both bounds are inclusive.
func inDateRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}
