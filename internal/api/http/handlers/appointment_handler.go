package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rehab-center/clinic-service/internal/api/dto"
	"github.com/rehab-center/clinic-service/internal/service"
	apperrors "github.com/rehab-center/clinic-service/pkg/util"
)

// AppointmentHandler exposes the generic appointments surface.
type AppointmentHandler struct {
	appointments *service.AppointmentService
}

// NewAppointmentHandler constructs handler.
func NewAppointmentHandler(appointments *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// Create handles POST /api/appointments.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req dto.BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.PatientName == "" || req.Phone == "" || req.Date == "" || req.Reason == "" {
		return apperrors.NewValidationError("patientName, phone, date and reason required", nil)
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
		"message":     "Created",
		"appointment": dto.NewAppointmentResponse(appt),
	})
}

// List handles GET /api/appointments.
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	appts, err := h.appointments.List(c.Context(), nil)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "ok", "appointments": dto.NewAppointmentResponses(appts)})
}
