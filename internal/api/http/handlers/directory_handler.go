package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rehab-center/clinic-service/internal/api/dto"
	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/service"
	apperrors "github.com/rehab-center/clinic-service/pkg/util"
)

// DirectoryHandler exposes the public staff and testimonial listings.
type DirectoryHandler struct {
	directory *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// ListStaff handles GET /api/staff.
func (h *DirectoryHandler) ListStaff(c *fiber.Ctx) error {
	staff, err := h.directory.ListStaff(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "ok", "staff": dto.NewStaffResponses(staff)})
}

// CreateStaff handles POST /api/staff.
func (h *DirectoryHandler) CreateStaff(c *fiber.Ctx) error {
	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	profile := &domain.StaffProfile{
		Name:     req.Name,
		Role:     req.Role,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
	}
	if err := h.directory.CreateStaff(c.Context(), profile); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Staff profile created",
		"staff":   dto.StaffResponse{ID: profile.ID, Name: profile.Name, Role: profile.Role, Bio: profile.Bio, PhotoURL: profile.PhotoURL},
	})
}

// ListTestimonials handles GET /api/testimonials.
func (h *DirectoryHandler) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.directory.ListTestimonials(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "ok", "testimonials": dto.NewTestimonialResponses(testimonials)})
}

// CreateTestimonial handles POST /api/testimonials.
func (h *DirectoryHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req dto.TestimonialCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Author == "" || req.Quote == "" {
		return apperrors.NewValidationError("author and quote required", nil)
	}

	testimonial := &domain.Testimonial{
		Author: req.Author,
		Quote:  req.Quote,
		Rating: req.Rating,
	}
	if err := h.directory.CreateTestimonial(c.Context(), testimonial); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":     "Testimonial created",
		"testimonial": dto.TestimonialResponse{ID: testimonial.ID, Author: testimonial.Author, Quote: testimonial.Quote, Rating: testimonial.Rating},
	})
}
