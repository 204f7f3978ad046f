package model

import "time"

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type User struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"` // bcrypt hash, never serialized
	Name       string    `json:"name"`
	Role       string    `json:"role"` // employee / admin
	Department string    `json:"department,omitempty"`
	Position   string    `json:"position,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Profile holds the fields an employee update is allowed to touch.
type Profile struct {
	Name       string
	Department string
	Position   string
	Phone      string
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
