package events

import (
	"time"

	"github.com/rehab-center/clinic-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDoctorApproved EventType = "doctor_approved"
	EventDoctorRejected EventType = "doctor_rejected"
	EventLeaveApproved  EventType = "leave_approved"
	EventLeaveRejected  EventType = "leave_rejected"
)

// Event represents a domain event emitted after an admin mutation.
type Event struct {
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// DoctorDecisionPayload carries the doctor whose approval state changed.
// Email doubles as the realtime registry key doctors register under.
type DoctorDecisionPayload struct {
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	DoctorEmail string `json:"doctor_email"`
}

// LeaveDecisionPayload carries the decided leave request. Name is the
// registry key the requester registers under.
type LeaveDecisionPayload struct {
	LeaveID  string             `json:"leave_id"`
	Name     string             `json:"name"`
	FromDate string             `json:"from_date"`
	ToDate   string             `json:"to_date"`
	Status   domain.LeaveStatus `json:"status"`
}
