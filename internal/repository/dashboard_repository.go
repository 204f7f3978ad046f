package repository

import (
	"dayflow-backend/internal/model"
)

// RecentAttendance is an attendance record joined with its owner.
type RecentAttendance struct {
	Record model.Attendance
	Name   string
	Email  string
}

// AdminStats is a consistent snapshot of the admin dashboard counters.
type AdminStats struct {
	TotalEmployees   int
	PresentToday     int
	PendingLeaves    int
	RecentAttendance []RecentAttendance
}

type DashboardRepository interface {
	GetAdminStats(date string, recent int) AdminStats
	CountPendingLeaves(userID uint) int
}

type dashboardRepository struct {
	db *DB
}

func NewDashboardRepository(db *DB) DashboardRepository {
	return &dashboardRepository{db}
}

// GetAdminStats reads all counters under one lock. RecentAttendance holds the
// last `recent` records by insertion order, newest first. Records whose user
// no longer resolves keep an empty name and email.
func (r *dashboardRepository) GetAdminStats(date string, recent int) AdminStats {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var stats AdminStats

	for _, u := range r.db.users {
		if u.Role == model.RoleEmployee {
			stats.TotalEmployees++
		}
	}

	for _, a := range r.db.attendance {
		if a.Date == date && a.Status == model.AttendanceStatusPresent {
			stats.PresentToday++
		}
	}

	for _, l := range r.db.leaveRequests {
		if l.Status == model.LeaveStatusPending {
			stats.PendingLeaves++
		}
	}

	users := make(map[uint]model.User, len(r.db.users))
	for _, u := range r.db.users {
		if _, ok := users[u.ID]; !ok {
			users[u.ID] = u
		}
	}

	stats.RecentAttendance = make([]RecentAttendance, 0, recent)
	for i := len(r.db.attendance) - 1; i >= 0 && len(stats.RecentAttendance) < recent; i-- {
		a := r.db.attendance[i]
		u := users[a.UserID]
		stats.RecentAttendance = append(stats.RecentAttendance, RecentAttendance{
			Record: copyAttendance(a),
			Name:   u.Name,
			Email:  u.Email,
		})
	}

	return stats
}

func (r *dashboardRepository) CountPendingLeaves(userID uint) int {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	n := 0
	for _, l := range r.db.leaveRequests {
		if l.UserID == userID && l.Status == model.LeaveStatusPending {
			n++
		}
	}
	return n
}
