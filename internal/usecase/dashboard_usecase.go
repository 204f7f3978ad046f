package usecase

import (
	"time"

	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/repository"
)

const recentAttendanceLimit = 10

// RecentAttendance is an attendance record flattened together with its
// owner's name and email.
type RecentAttendance struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	CheckIn     time.Time  `json:"check_in"`
	CheckOut    *time.Time `json:"check_out"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
	HoursWorked string     `json:"hours_worked,omitempty"`
	Name        string     `json:"name,omitempty"`
	Email       string     `json:"email,omitempty"`
}

type AdminDashboard struct {
	TotalEmployees   int                `json:"totalEmployees"`
	PresentToday     int                `json:"presentToday"`
	PendingLeaves    int                `json:"pendingLeaves"`
	RecentAttendance []RecentAttendance `json:"recentAttendance"`
}

type EmployeeDashboard struct {
	CheckedInToday bool       `json:"checkedInToday"`
	CheckInTime    *time.Time `json:"checkInTime"`
	CheckOutTime   *time.Time `json:"checkOutTime"`
	LeaveBalance   int        `json:"leaveBalance"`
	PendingLeaves  int        `json:"pendingLeaves"`
}

type DashboardUsecase struct {
	dashboard  repository.DashboardRepository
	attendance repository.AttendanceRepository
	leaves     repository.LeaveRepository
	now        Clock
}

func NewDashboardUsecase(
	dashboard repository.DashboardRepository,
	attendance repository.AttendanceRepository,
	leaves repository.LeaveRepository,
	now Clock,
) *DashboardUsecase {
	return &DashboardUsecase{dashboard: dashboard, attendance: attendance, leaves: leaves, now: now.orDefault()}
}

// Stats returns *AdminDashboard for admins and *EmployeeDashboard otherwise.
func (u *DashboardUsecase) Stats(caller auth.Identity) interface{} {
	if caller.IsAdmin() {
		return u.Admin()
	}
	return u.Employee(caller.ID)
}

func (u *DashboardUsecase) Admin() *AdminDashboard {
	stats := u.dashboard.GetAdminStats(today(u.now), recentAttendanceLimit)

	recent := make([]RecentAttendance, 0, len(stats.RecentAttendance))
	for _, r := range stats.RecentAttendance {
		recent = append(recent, RecentAttendance{
			ID:          r.Record.ID,
			UserID:      r.Record.UserID,
			CheckIn:     r.Record.CheckIn,
			CheckOut:    r.Record.CheckOut,
			Date:        r.Record.Date,
			Status:      r.Record.Status,
			HoursWorked: r.Record.HoursWorkedLabel(),
			Name:        r.Name,
			Email:       r.Email,
		})
	}

	return &AdminDashboard{
		TotalEmployees:   stats.TotalEmployees,
		PresentToday:     stats.PresentToday,
		PendingLeaves:    stats.PendingLeaves,
		RecentAttendance: recent,
	}
}

func (u *DashboardUsecase) Employee(userID uint) *EmployeeDashboard {
	stats := &EmployeeDashboard{
		LeaveBalance:  AnnualLeaveDays - usedAnnualDays(u.leaves.GetByUserID(userID), u.now().Year()),
		PendingLeaves: u.dashboard.CountPendingLeaves(userID),
	}

	if record, err := u.attendance.GetByDate(userID, today(u.now)); err == nil {
		checkIn := record.CheckIn
		stats.CheckedInToday = true
		stats.CheckInTime = &checkIn
		stats.CheckOutTime = record.CheckOut
	}
	return stats
}
