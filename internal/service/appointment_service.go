package service

import (
	"context"
	"strings"

	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/repository"
)

// AppointmentService coordinates booking and the doctor-side workflow.
type AppointmentService struct {
	appointments repository.AppointmentRepository
}

// NewAppointmentService builds the service.
func NewAppointmentService(appointments repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

// BookingInput describes a patient booking request.
type BookingInput struct {
	DoctorName  string
	PatientName string
	Phone       string
	Date        string
	Reason      string
}

// Book stores a new appointment. A booking without a named doctor is
// assigned to the shared pool so every doctor sees it.
func (s *AppointmentService) Book(ctx context.Context, input BookingInput) (*domain.Appointment, error) {
	doctor := strings.TrimSpace(input.DoctorName)
	if doctor == "" {
		doctor = domain.UnassignedDoctor
	}

	appt := &domain.Appointment{
		PatientName: input.PatientName,
		Phone:       input.Phone,
		DoctorName:  doctor,
		Date:        input.Date,
		Reason:      input.Reason,
		Status:      domain.AppointmentStatusScheduled,
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// List returns appointments newest first, optionally filtered by doctor.
func (s *AppointmentService) List(ctx context.Context, doctorName *string) ([]domain.Appointment, error) {
	return s.appointments.List(ctx, doctorName)
}

// Approve marks an appointment approved.
func (s *AppointmentService) Approve(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.appointments.SetStatus(ctx, id, domain.AppointmentStatusApproved)
}

// Reject marks an appointment rejected.
func (s *AppointmentService) Reject(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.appointments.SetStatus(ctx, id, domain.AppointmentStatusRejected)
}

// Complete marks an appointment completed.
func (s *AppointmentService) Complete(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.appointments.SetStatus(ctx, id, domain.AppointmentStatusCompleted)
}

// Delete removes an appointment.
func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.appointments.Delete(ctx, id)
}
