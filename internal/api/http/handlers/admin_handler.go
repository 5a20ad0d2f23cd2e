package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/rehab-center/clinic-service/internal/api/dto"
	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/service"
)

// AdminHandler exposes user management, doctor approvals and leave decisions.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.admin.ListUsers(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"message": "ok", "users": out})
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.admin.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// PendingDoctors handles GET /api/admin/pending-doctors.
func (h *AdminHandler) PendingDoctors(c *fiber.Ctx) error {
	doctors, err := h.admin.PendingDoctors(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.UserResponse, 0, len(doctors))
	for i := range doctors {
		out = append(out, dto.NewUserResponse(&doctors[i]))
	}
	if len(out) == 0 {
		return c.JSON(fiber.Map{"message": "No pending doctors found", "doctors": out})
	}
	return c.JSON(fiber.Map{"message": "ok", "doctors": out})
}

// ApprovedDoctors handles GET /api/admin/approved-doctors.
func (h *AdminHandler) ApprovedDoctors(c *fiber.Ctx) error {
	doctors, err := h.admin.ApprovedDoctors(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.UserResponse, 0, len(doctors))
	for i := range doctors {
		out = append(out, dto.NewUserResponse(&doctors[i]))
	}
	return c.JSON(fiber.Map{"message": "ok", "doctors": out})
}

// ApproveDoctor handles PUT /api/admin/approve-doctor/:id.
func (h *AdminHandler) ApproveDoctor(c *fiber.Ctx) error {
	doctor, err := h.admin.ApproveDoctor(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Doctor approved successfully!",
		"doctor":  dto.NewUserResponse(doctor),
	})
}

// RejectDoctor handles DELETE /api/admin/reject-doctor/:id.
func (h *AdminHandler) RejectDoctor(c *fiber.Ctx) error {
	if _, err := h.admin.RejectDoctor(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Doctor rejected and removed successfully"})
}

// Leaves handles GET /api/admin/leaves.
func (h *AdminHandler) Leaves(c *fiber.Ctx) error {
	leaves, err := h.admin.ListLeaves(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "ok", "leaves": dto.NewLeaveResponses(leaves)})
}

// ApproveLeave handles PUT /api/admin/leave/approve/:id.
func (h *AdminHandler) ApproveLeave(c *fiber.Ctx) error {
	leave, err := h.admin.DecideLeave(c.Context(), c.Params("id"), domain.LeaveStatusApproved)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Leave approved for %s", leave.Name),
		"leave":   dto.NewLeaveResponse(leave),
	})
}

// RejectLeave handles PUT /api/admin/leave/reject/:id.
func (h *AdminHandler) RejectLeave(c *fiber.Ctx) error {
	leave, err := h.admin.DecideLeave(c.Context(), c.Params("id"), domain.LeaveStatusRejected)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Leave rejected for %s", leave.Name),
		"leave":   dto.NewLeaveResponse(leave),
	})
}
