package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rehab-center/clinic-service/internal/api/dto"
	"github.com/rehab-center/clinic-service/internal/service"
	apperrors "github.com/rehab-center/clinic-service/pkg/util"
)

// PatientHandler exposes the public booking endpoint.
type PatientHandler struct {
	appointments *service.AppointmentService
}

// NewPatientHandler constructs handler.
func NewPatientHandler(appointments *service.AppointmentService) *PatientHandler {
	return &PatientHandler{appointments: appointments}
}

// Book handles POST /api/patient/book.
func (h *PatientHandler) Book(c *fiber.Ctx) error {
	var req dto.BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.PatientName == "" || req.Phone == "" || req.Date == "" || req.Reason == "" {
		return apperrors.NewValidationError("patientName, phone, date and reason required", nil)
	}
	if !validPhone(req.Phone) {
		return apperrors.NewValidationError("phone must be a 10-digit number", nil)
	}

	appt, err := h.appointments.Book(c.Context(), service.BookingInput{
		DoctorName:  req.DoctorName,
		PatientName: req.PatientName,
		Phone:       req.Phone,
		Date:        req.Date,
		Reason:      req.Reason,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":     "Appointment booked successfully!",
		"appointment": dto.NewAppointmentResponse(appt),
	})
}
