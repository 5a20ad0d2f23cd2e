package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rehab-center/clinic-service/internal/api/dto"
	"github.com/rehab-center/clinic-service/internal/service"
)

// DoctorHandler exposes the doctor-facing appointment workflow.
type DoctorHandler struct {
	appointments *service.AppointmentService
}

// NewDoctorHandler constructs handler.
func NewDoctorHandler(appointments *service.AppointmentService) *DoctorHandler {
	return &DoctorHandler{appointments: appointments}
}

// Appointments handles GET /api/doctor/appointments?doctorName=.
func (h *DoctorHandler) Appointments(c *fiber.Ctx) error {
	var doctorName *string
	if name := c.Query("doctorName"); name != "" {
		doctorName = &name
	}

	appts, err := h.appointments.List(c.Context(), doctorName)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":      "ok",
		"appointments": dto.NewAppointmentResponses(appts),
	})
}

// Approve handles PUT /api/doctor/appointments/:id/approve.
func (h *DoctorHandler) Approve(c *fiber.Ctx) error {
	appt, err := h.appointments.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":     "Appointment approved successfully",
		"appointment": dto.NewAppointmentResponse(appt),
	})
}

// Reject handles PUT /api/doctor/appointments/:id/reject.
func (h *DoctorHandler) Reject(c *fiber.Ctx) error {
	appt, err := h.appointments.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":     "Appointment rejected successfully",
		"appointment": dto.NewAppointmentResponse(appt),
	})
}

// Complete handles PUT /api/doctor/appointments/:id/complete.
func (h *DoctorHandler) Complete(c *fiber.Ctx) error {
	appt, err := h.appointments.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":     "Appointment marked as completed successfully!",
		"appointment": dto.NewAppointmentResponse(appt),
	})
}

// Delete handles DELETE /api/doctor/appointments/:id.
func (h *DoctorHandler) Delete(c *fiber.Ctx) error {
	if err := h.appointments.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Appointment deleted successfully"})
}
