package model

import "time"

type Payroll struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Month       string    `json:"month"` // month name, e.g. "January"
	Year        int       `json:"year"`
	BasicSalary float64   `json:"basic_salary"`
	Allowances  float64   `json:"allowances"`
	Deductions  float64   `json:"deductions"`
	NetSalary   float64   `json:"net_salary"` // frozen at creation
	CreatedAt   time.Time `json:"created_at"`
}

// NetOf computes basic + allowances - deductions.
func NetOf(basic, allowances, deductions float64) float64 {
	return basic + allowances - deductions
}
