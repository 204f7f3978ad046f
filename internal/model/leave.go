package model

import "time"

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

const (
	LeaveTypePaid   = "paid"
	LeaveTypeSick   = "sick"
	LeaveTypeUnpaid = "unpaid"
)

// LeaveRequest keeps LeaveType and Status as free text; only the values above
// are interpreted by the balance computations.
type LeaveRequest struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	LeaveType string    `json:"leave_type"` // paid / sick / unpaid
	StartDate string    `json:"start_date"` // YYYY-MM-DD
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"` // pending / approved / rejected
	CreatedAt time.Time `json:"created_at"`
}
