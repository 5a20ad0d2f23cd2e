package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rehab-center/clinic-service/internal/api/dto"
	"github.com/rehab-center/clinic-service/internal/service"
	apperrors "github.com/rehab-center/clinic-service/pkg/util"
)

// ProgramHandler exposes the program catalog.
type ProgramHandler struct {
	programs *service.ProgramService
}

// NewProgramHandler constructs handler.
func NewProgramHandler(programService *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programs: programService}
}

// List handles GET /api/programs.
func (h *ProgramHandler) List(c *fiber.Ctx) error {
	programs, err := h.programs.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "ok", "programs": dto.NewProgramResponses(programs)})
}

// GetBySlug handles GET /api/programs/:slug.
func (h *ProgramHandler) GetBySlug(c *fiber.Ctx) error {
	program, err := h.programs.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "ok", "program": dto.NewProgramResponse(program)})
}

// Create handles POST /api/programs.
func (h *ProgramHandler) Create(c *fiber.Ctx) error {
	var req dto.ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	program, err := h.programs.Create(c.Context(), programInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Program created",
		"program": dto.NewProgramResponse(program),
	})
}

// Update handles PUT /api/programs/:id.
func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	var req dto.ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	program, err := h.programs.Update(c.Context(), c.Params("id"), programInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Program updated",
		"program": dto.NewProgramResponse(program),
	})
}

// Delete handles DELETE /api/programs/:id.
func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	if err := h.programs.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}

func programInput(req dto.ProgramRequest) service.ProgramInput {
	return service.ProgramInput{
		Title:         req.Title,
		Summary:       req.Summary,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
		Cost:          req.Cost,
		ImageURL:      req.ImageURL,
	}
}
