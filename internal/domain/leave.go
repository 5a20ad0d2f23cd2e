package domain

import "time"

// LeaveStatus enumerates leave request states.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// Leave is a leave request submitted by a doctor or staff member,
// keyed by display name (the same name the requester registers on the
// realtime channel).
type Leave struct {
	ID        string
	Name      string
	Reason    string
	FromDate  string
	ToDate    string
	Status    LeaveStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
