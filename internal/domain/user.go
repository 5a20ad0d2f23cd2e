package domain

import "time"

// User is the domain model for every account: patients, doctors, staff, admins.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Institution  *string
	IsVerified   bool
	IsApproved   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RequiresApproval reports whether the account must be approved by an
// admin before it may log in. Only doctors go through the approval queue.
func (u *User) RequiresApproval() bool {
	return u.Role == RoleDoctor
}
