package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rehab-center/clinic-service/internal/api/dto"
	"github.com/rehab-center/clinic-service/internal/service"
	apperrors "github.com/rehab-center/clinic-service/pkg/util"
)

// AuthHandler exposes signup, login and the public doctor listing.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email and password required", nil)
	}

	user, err := h.auth.Signup(c.Context(), service.SignupInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Institution: req.Institution,
	})
	if err != nil {
		return err
	}

	message := "Signup successful!"
	if user.RequiresApproval() {
		message = "Signup successful! Please wait for admin approval before logging in."
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": message,
		"user":    dto.NewUserResponse(user),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		"user":    dto.NewUserResponse(user),
	})
}

// Doctors handles GET /api/auth/doctors: approved doctors only.
func (h *AuthHandler) Doctors(c *fiber.Ctx) error {
	doctors, err := h.auth.ApprovedDoctors(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "ok",
		"doctors": doctors,
	})
}
