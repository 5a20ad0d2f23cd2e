package domain

import "time"

// AppointmentStatus enumerates booking lifecycle states.
// "completed" stays lowercase: deployed clients match on the exact value.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusApproved  AppointmentStatus = "Approved"
	AppointmentStatusRejected  AppointmentStatus = "Rejected"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// UnassignedDoctor is the doctor name used when a booking names nobody,
// making the appointment visible to every doctor.
const UnassignedDoctor = "All Doctors"

// Appointment stores a booking made by a patient and worked by doctors.
type Appointment struct {
	ID          string
	PatientName string
	Phone       string
	DoctorName  string
	Date        string
	Reason      string
	Status      AppointmentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
