package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rehab-center/clinic-service/internal/api/dto"
	"github.com/rehab-center/clinic-service/internal/service"
	apperrors "github.com/rehab-center/clinic-service/pkg/util"
)

// LeaveHandler exposes leave submission and personal history.
type LeaveHandler struct {
	leaves *service.LeaveService
}

// NewLeaveHandler constructs handler.
func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaves: leaveService}
}

// Request handles POST /api/leave/request.
func (h *LeaveHandler) Request(c *fiber.Ctx) error {
	var req dto.LeaveRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Reason == "" || req.FromDate == "" || req.ToDate == "" {
		return apperrors.NewValidationError("all fields are required", nil)
	}

	leave, err := h.leaves.Request(c.Context(), service.LeaveInput{
		Name:     req.Name,
		Reason:   req.Reason,
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Leave request submitted successfully!",
		"leave":   dto.NewLeaveResponse(leave),
	})
}

// MyLeaves handles GET /api/leave/my-leaves/:name.
func (h *LeaveHandler) MyLeaves(c *fiber.Ctx) error {
	leaves, err := h.leaves.MyLeaves(c.Context(), c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "ok", "leaves": dto.NewLeaveResponses(leaves)})
}
