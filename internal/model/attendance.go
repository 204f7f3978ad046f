package model

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

const AttendanceStatusPresent = "present"

// DateLayout is the calendar day format used for attendance and leave dates.
// Lexicographic order of values in this layout is chronological order.
const DateLayout = "2006-01-02"

type Attendance struct {
	ID       uint       `json:"id"`
	UserID   uint       `json:"user_id"`
	CheckIn  time.Time  `json:"check_in"`
	CheckOut *time.Time `json:"check_out"` // null until checkout
	Date     string     `json:"date"`      // YYYY-MM-DD
	Status   string     `json:"status"`
}

// HoursWorked returns whole hours and remaining minutes between check-in and
// check-out. ok is false while the record is still open.
func (a Attendance) HoursWorked() (hours, minutes int, ok bool) {
	if a.CheckOut == nil {
		return 0, 0, false
	}
	diff := a.CheckOut.Sub(a.CheckIn)
	if diff < 0 {
		diff = 0
	}
	hours = int(diff / time.Hour)
	minutes = int((diff % time.Hour) / time.Minute)
	return hours, minutes, true
}

// HoursWorkedLabel formats HoursWorked as "8h 5m", or "" while open.
func (a Attendance) HoursWorkedLabel() string {
	h, m, ok := a.HoursWorked()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func (a Attendance) MarshalJSON() ([]byte, error) {
	type alias Attendance
	return json.Marshal(struct {
		alias
		HoursWorked string `json:"hours_worked,omitempty"`
	}{
		alias:       alias(a),
		HoursWorked: a.HoursWorkedLabel(),
	})
}
