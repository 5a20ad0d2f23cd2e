package dto

import (
	"time"

	"github.com/rehab-center/clinic-service/internal/domain"
)

// BookAppointmentRequest payload for patient bookings.
type BookAppointmentRequest struct {
	DoctorName  string `json:"doctorName"`
	PatientName string `json:"patientName"`
	Phone       string `json:"phone"`
	Date        string `json:"date"`
	Reason      string `json:"reason"`
}

// AppointmentResponse is the public shape of an appointment.
type AppointmentResponse struct {
	ID          string                   `json:"id"`
	PatientName string                   `json:"patientName"`
	Phone       string                   `json:"phone"`
	DoctorName  string                   `json:"doctorName"`
	Date        string                   `json:"date"`
	Reason      string                   `json:"reason"`
	Status      domain.AppointmentStatus `json:"status"`
	CreatedAt   time.Time                `json:"createdAt"`
}

// NewAppointmentResponse maps a domain appointment.
func NewAppointmentResponse(appt *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          appt.ID,
		PatientName: appt.PatientName,
		Phone:       appt.Phone,
		DoctorName:  appt.DoctorName,
		Date:        appt.Date,
		Reason:      appt.Reason,
		Status:      appt.Status,
		CreatedAt:   appt.CreatedAt,
	}
}

// NewAppointmentResponses maps a slice.
func NewAppointmentResponses(appts []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, NewAppointmentResponse(&appts[i]))
	}
	return out
}
