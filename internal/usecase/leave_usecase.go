package usecase

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/metrics"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/notify"
	"dayflow-backend/internal/repository"
)

const (
	// AnnualLeaveDays is the flat yearly allowance shown on the dashboard.
	AnnualLeaveDays = 20

	msgLeaveNotFound = "Leave request not found"
)

// LeaveAllotments is the per-type yearly allowance.
var LeaveAllotments = map[string]int{
	model.LeaveTypePaid:   15,
	model.LeaveTypeSick:   10,
	model.LeaveTypeUnpaid: 5,
}

type LeaveInput struct {
	LeaveType string
	StartDate string
	EndDate   string
	Reason    string
}

type BalanceEntry struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

type LeaveBalance struct {
	Paid   BalanceEntry `json:"paid"`
	Sick   BalanceEntry `json:"sick"`
	Unpaid BalanceEntry `json:"unpaid"`
}

type LeaveUsecase struct {
	leaves   repository.LeaveRepository
	users    repository.UserRepository
	settings repository.SettingsRepository
	notifier notify.LeaveNotifier
	metrics  *metrics.Metrics
	log      *slog.Logger
	now      Clock
}

func NewLeaveUsecase(
	leaves repository.LeaveRepository,
	users repository.UserRepository,
	settings repository.SettingsRepository,
	notifier notify.LeaveNotifier,
	m *metrics.Metrics,
	log *slog.Logger,
	now Clock,
) *LeaveUsecase {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &LeaveUsecase{
		leaves:   leaves,
		users:    users,
		settings: settings,
		notifier: notifier,
		metrics:  m,
		log:      log,
		now:      now.orDefault(),
	}
}

// Create files a pending request for the caller. Dates are not checked against
// each other, existing requests or the balance.
func (u *LeaveUsecase) Create(ctx context.Context, userID uint, in LeaveInput) (model.LeaveRequest, error) {
	leave := model.LeaveRequest{
		UserID:    userID,
		LeaveType: in.LeaveType,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    in.Reason,
		Status:    model.LeaveStatusPending,
		CreatedAt: u.now(),
	}
	if err := u.leaves.Create(&leave); err != nil {
		return model.LeaveRequest{}, apperror.Internal("Failed to create leave request", err)
	}

	u.metrics.IncLeave(leave.Status)
	u.log.InfoContext(ctx, "Leave request created", "leave_id", leave.ID, "user_id", userID)
	return leave, nil
}

// List returns the requests visible to the caller, newest first.
func (u *LeaveUsecase) List(caller auth.Identity) []model.LeaveRequest {
	var leaves []model.LeaveRequest
	if caller.IsAdmin() {
		leaves = u.leaves.GetAll()
	} else {
		leaves = u.leaves.GetByUserID(caller.ID)
	}

	sort.SliceStable(leaves, func(i, j int) bool {
		return leaves[i].CreatedAt.After(leaves[j].CreatedAt)
	})
	if leaves == nil {
		leaves = []model.LeaveRequest{}
	}
	return leaves
}

// UpdateStatus sets any status string. The owner is notified when email
// notifications are switched on.
func (u *LeaveUsecase) UpdateStatus(ctx context.Context, id uint, status string) (model.LeaveRequest, error) {
	leave, err := u.leaves.UpdateStatus(id, status)
	if err != nil {
		return model.LeaveRequest{}, apperror.NotFound(msgLeaveNotFound)
	}

	u.metrics.IncLeave(leave.Status)
	u.log.InfoContext(ctx, "Leave request updated", "leave_id", leave.ID, "status", leave.Status)

	if u.settings.Get().EmailNotifications {
		if owner, err := u.users.FindByID(leave.UserID); err == nil {
			u.notifier.LeaveDecided(ctx, *owner, leave)
		}
	}
	return leave, nil
}

// Balance computes the per-type allowance for the current year from the
// caller's approved requests.
func (u *LeaveUsecase) Balance(userID uint) LeaveBalance {
	used := make(map[string]int, len(LeaveAllotments))
	year := u.now().Year()

	for _, l := range u.leaves.GetByUserID(userID) {
		if l.Status != model.LeaveStatusApproved {
			continue
		}
		start, end, ok := parseLeaveDates(l)
		if !ok || start.Year() != year {
			continue
		}
		used[l.LeaveType] += int(end.Sub(start)/(24*time.Hour)) + 1
	}

	entry := func(leaveType string) BalanceEntry {
		total := LeaveAllotments[leaveType]
		return BalanceEntry{Total: total, Used: used[leaveType], Remaining: total - used[leaveType]}
	}
	return LeaveBalance{
		Paid:   entry(model.LeaveTypePaid),
		Sick:   entry(model.LeaveTypeSick),
		Unpaid: entry(model.LeaveTypeUnpaid),
	}
}

// LeaveDays counts the calendar days a request spans, both ends included.
func LeaveDays(startDate, endDate string) (int, error) {
	start, err := time.Parse(model.DateLayout, startDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse(model.DateLayout, endDate)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1, nil
}

// usedAnnualDays sums LeaveDays over approved requests starting in year.
func usedAnnualDays(leaves []model.LeaveRequest, year int) int {
	total := 0
	for _, l := range leaves {
		if l.Status != model.LeaveStatusApproved {
			continue
		}
		start, _, ok := parseLeaveDates(l)
		if !ok || start.Year() != year {
			continue
		}
		days, err := LeaveDays(l.StartDate, l.EndDate)
		if err != nil {
			continue
		}
		total += days
	}
	return total
}

func parseLeaveDates(l model.LeaveRequest) (start, end time.Time, ok bool) {
	start, err := time.Parse(model.DateLayout, l.StartDate)
	if err != nil {
		return start, end, false
	}
	end, err = time.Parse(model.DateLayout, l.EndDate)
	if err != nil {
		return start, end, false
	}
	return start, end, true
}
