package repository

import (
	"errors"
	"sync"

	"dayflow-backend/internal/model"
)

var (
	// ErrRecordNotFound is returned when no entity matches the lookup.
	ErrRecordNotFound = errors.New("record not found")
	// ErrEmailExists is returned when a user with the same email is already stored.
	ErrEmailExists = errors.New("email already exists")
	// ErrAlreadyCheckedIn is returned when the user already has a record for the day.
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	// ErrNoActiveCheckIn is returned when there is no open record for the day.
	ErrNoActiveCheckIn = errors.New("no active check-in found")
)

// DB is the in-memory entity store. Collections are kept in insertion order,
// which is also id order. Every id counter starts at 1 and is advanced only
// when an entity is appended.
//
// One mutex guards everything, so each repository call is atomic with respect
// to the others.
type DB struct {
	mu sync.RWMutex

	users         []model.User
	attendance    []model.Attendance
	leaveRequests []model.LeaveRequest
	payroll       []model.Payroll
	settings      model.Settings

	userSeq       uint
	attendanceSeq uint
	leaveSeq      uint
	payrollSeq    uint
}

func NewDB() *DB {
	return &DB{settings: model.DefaultSettings()}
}

// Counts is a snapshot of collection sizes.
type Counts struct {
	Users      int
	Attendance int
	Leaves     int
	Payroll    int
}

func (db *DB) Counts() Counts {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return Counts{
		Users:      len(db.users),
		Attendance: len(db.attendance),
		Leaves:     len(db.leaveRequests),
		Payroll:    len(db.payroll),
	}
}

func (db *DB) nextUserID() uint {
	db.userSeq++
	return db.userSeq
}

func (db *DB) nextAttendanceID() uint {
	db.attendanceSeq++
	return db.attendanceSeq
}

func (db *DB) nextLeaveID() uint {
	db.leaveSeq++
	return db.leaveSeq
}

func (db *DB) nextPayrollID() uint {
	db.payrollSeq++
	return db.payrollSeq
}
