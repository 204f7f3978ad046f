package repository

import (
	"time"

	"dayflow-backend/internal/model"
)

type AttendanceRepository interface {
	CheckIn(userID uint, date string, at time.Time) (model.Attendance, error)
	CheckOut(userID uint, date string, at time.Time) (model.Attendance, error)
	GetByDate(userID uint, date string) (*model.Attendance, error)
	GetAll() []model.Attendance
	GetByUserID(userID uint) []model.Attendance
}

type attendanceRepository struct {
	db *DB
}

func NewAttendanceRepository(db *DB) AttendanceRepository {
	return &attendanceRepository{db}
}

// CheckIn appends a present record for (userID, date) unless one already
// exists for that day, checked out or not.
func (r *attendanceRepository) CheckIn(userID uint, date string, at time.Time) (model.Attendance, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, a := range r.db.attendance {
		if a.UserID == userID && a.Date == date {
			return model.Attendance{}, ErrAlreadyCheckedIn
		}
	}

	record := model.Attendance{
		ID:      r.db.nextAttendanceID(),
		UserID:  userID,
		CheckIn: at,
		Date:    date,
		Status:  model.AttendanceStatusPresent,
	}
	r.db.attendance = append(r.db.attendance, record)
	return record, nil
}

// CheckOut stamps the open record for (userID, date). A record can only be
// checked out once.
func (r *attendanceRepository) CheckOut(userID uint, date string, at time.Time) (model.Attendance, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.attendance {
		a := &r.db.attendance[i]
		if a.UserID == userID && a.Date == date && a.CheckOut == nil {
			checkOut := at
			a.CheckOut = &checkOut
			return copyAttendance(*a), nil
		}
	}
	return model.Attendance{}, ErrNoActiveCheckIn
}

func (r *attendanceRepository) GetByDate(userID uint, date string) (*model.Attendance, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, a := range r.db.attendance {
		if a.UserID == userID && a.Date == date {
			record := copyAttendance(a)
			return &record, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (r *attendanceRepository) GetAll() []model.Attendance {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	list := make([]model.Attendance, 0, len(r.db.attendance))
	for _, a := range r.db.attendance {
		list = append(list, copyAttendance(a))
	}
	return list
}

func (r *attendanceRepository) GetByUserID(userID uint) []model.Attendance {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var list []model.Attendance
	for _, a := range r.db.attendance {
		if a.UserID == userID {
			list = append(list, copyAttendance(a))
		}
	}
	return list
}

// copyAttendance detaches the CheckOut pointer from the stored record.
func copyAttendance(a model.Attendance) model.Attendance {
	if a.CheckOut != nil {
		t := *a.CheckOut
		a.CheckOut = &t
	}
	return a
}
