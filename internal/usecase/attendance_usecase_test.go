package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/model"
)

func TestAttendanceUsecase_CheckInCheckOut(t *testing.T) {
	f := newFixture(t)
	uc := NewAttendanceUsecase(f.attendance, nil, f.log, f.clock())
	ctx := context.Background()

	_, err := uc.CheckOut(ctx, 1)
	assert.Equal(t, "No active check-in found", apperror.From(err).Message)

	rec, err := uc.CheckIn(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-08", rec.Date)
	assert.Equal(t, model.AttendanceStatusPresent, rec.Status)

	_, err = uc.CheckIn(ctx, 1)
	appErr := apperror.From(err)
	assert.Equal(t, "Already checked in today", appErr.Message)
	assert.Equal(t, 400, appErr.Status())

	f.advance(8*time.Hour + 5*time.Minute)
	rec, err = uc.CheckOut(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "8h 5m", rec.HoursWorkedLabel())

	_, err = uc.CheckOut(ctx, 1)
	assert.Equal(t, "No active check-in found", apperror.From(err).Message)
}

func TestAttendanceUsecase_List(t *testing.T) {
	f := newFixture(t)
	uc := NewAttendanceUsecase(f.attendance, nil, f.log, f.clock())
	ctx := context.Background()

	admin := f.addUser(t, "admin@co.com", "Admin", model.RoleAdmin)
	ann := f.addUser(t, "ann@co.com", "Ann", model.RoleEmployee)
	bob := f.addUser(t, "bob@co.com", "Bob", model.RoleEmployee)

	for day := 0; day < 3; day++ {
		_, err := uc.CheckIn(ctx, ann.ID)
		require.NoError(t, err)
		_, err = uc.CheckIn(ctx, bob.ID)
		require.NoError(t, err)
		f.advance(24 * time.Hour)
	}

	own := uc.List(identity(ann), AttendanceFilter{UserID: &bob.ID})
	require.Len(t, own, 3)
	for _, a := range own {
		assert.Equal(t, ann.ID, a.UserID)
	}
	assert.Equal(t, []string{"2026-01-10", "2026-01-09", "2026-01-08"}, dates(own))

	all := uc.List(identity(admin), AttendanceFilter{})
	assert.Len(t, all, 6)

	onlyBob := uc.List(identity(admin), AttendanceFilter{UserID: &bob.ID, StartDate: "2026-01-09", EndDate: "2026-01-09"})
	require.Len(t, onlyBob, 1)
	assert.Equal(t, "2026-01-09", onlyBob[0].Date)

	none := uc.List(identity(ann), AttendanceFilter{StartDate: "2027-01-01"})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func dates(list []model.Attendance) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Date)
	}
	return out
}
