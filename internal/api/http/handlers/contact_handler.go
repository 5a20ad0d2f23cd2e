package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rehab-center/clinic-service/internal/api/dto"
	"github.com/rehab-center/clinic-service/internal/service"
	apperrors "github.com/rehab-center/clinic-service/pkg/util"
)

// ContactHandler exposes the contact page endpoints.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contactService}
}

// Send handles POST /api/contact/send.
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	var req dto.ContactSendRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Message == "" {
		return apperrors.NewValidationError("all fields are required", nil)
	}
	if !validPhone(req.Phone) {
		return apperrors.NewValidationError("phone must be a 10-digit number", nil)
	}

	if _, err := h.contacts.Send(c.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Message sent successfully!"})
}

// Messages handles GET /api/contact/messages.
func (h *ContactHandler) Messages(c *fiber.Ctx) error {
	messages, err := h.contacts.Messages(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "ok", "messages": dto.NewContactResponses(messages)})
}

// DeleteMessage handles DELETE /api/contact/messages/:id.
func (h *ContactHandler) DeleteMessage(c *fiber.Ctx) error {
	if err := h.contacts.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Message deleted successfully!"})
}
