package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rehab-center/clinic-service/internal/api/http/handlers"
	"github.com/rehab-center/clinic-service/internal/auth"
	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/realtime"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Patient        *handlers.PatientHandler
	Doctor         *handlers.DoctorHandler
	Admin          *handlers.AdminHandler
	Leave          *handlers.LeaveHandler
	Contact        *handlers.ContactHandler
	Program        *handlers.ProgramHandler
	Appointment    *handlers.AppointmentHandler
	Directory      *handlers.DirectoryHandler
	AuthMiddleware *auth.AuthMiddleware
	Realtime       *realtime.Registry
	Logger         *zap.Logger
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Rehab center API is running"})
	})

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/doctors", cfg.Auth.Doctors)

	patient := api.Group("/patient")
	patient.Post("/book", cfg.Patient.Book)

	clinicians := []domain.Role{domain.RoleAdmin, domain.RoleDoctor, domain.RoleTherapist}
	doctor := api.Group("/doctor", cfg.AuthMiddleware.Handle, auth.RequireRoles(clinicians...))
	doctor.Get("/appointments", cfg.Doctor.Appointments)
	doctor.Put("/appointments/:id/approve", cfg.Doctor.Approve)
	doctor.Put("/appointments/:id/reject", cfg.Doctor.Reject)
	doctor.Put("/appointments/:id/complete", cfg.Doctor.Complete)
	doctor.Delete("/appointments/:id", cfg.Doctor.Delete)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRoles(domain.RoleAdmin))
	admin.Get("/users", cfg.Admin.Users)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)
	admin.Get("/pending-doctors", cfg.Admin.PendingDoctors)
	admin.Get("/approved-doctors", cfg.Admin.ApprovedDoctors)
	admin.Put("/approve-doctor/:id", cfg.Admin.ApproveDoctor)
	admin.Delete("/reject-doctor/:id", cfg.Admin.RejectDoctor)
	admin.Get("/leaves", cfg.Admin.Leaves)
	admin.Put("/leave/approve/:id", cfg.Admin.ApproveLeave)
	admin.Put("/leave/reject/:id", cfg.Admin.RejectLeave)

	leave := api.Group("/leave")
	leave.Post("/request", cfg.Leave.Request)
	leave.Get("/my-leaves/:name", cfg.Leave.MyLeaves)

	contact := api.Group("/contact")
	contact.Post("/send", cfg.Contact.Send)
	contactAdmin := contact.Group("/messages", cfg.AuthMiddleware.Handle, auth.RequireRoles(domain.RoleAdmin))
	contactAdmin.Get("/", cfg.Contact.Messages)
	contactAdmin.Delete("/:id", cfg.Contact.DeleteMessage)

	programs := api.Group("/programs")
	programs.Get("/", cfg.Program.List)
	programs.Get("/:slug", cfg.Program.GetBySlug)
	programWriters := auth.RequireRoles(domain.RoleAdmin, domain.RoleManager)
	programs.Post("/", cfg.AuthMiddleware.Handle, programWriters, cfg.Program.Create)
	programs.Put("/:id", cfg.AuthMiddleware.Handle, programWriters, cfg.Program.Update)
	programs.Delete("/:id", cfg.AuthMiddleware.Handle, programWriters, cfg.Program.Delete)

	appointments := api.Group("/appointments")
	appointments.Post("/", cfg.Appointment.Create)
	appointments.Get("/", cfg.AuthMiddleware.Handle,
		auth.RequireRoles(domain.RoleAdmin, domain.RoleManager, domain.RoleDoctor, domain.RoleTherapist),
		cfg.Appointment.List)

	staff := api.Group("/staff")
	staff.Get("/", cfg.Directory.ListStaff)
	staff.Post("/", cfg.AuthMiddleware.Handle, auth.RequireRoles(domain.RoleAdmin), cfg.Directory.CreateStaff)

	testimonials := api.Group("/testimonials")
	testimonials.Get("/", cfg.Directory.ListTestimonials)
	testimonials.Post("/", cfg.Directory.CreateTestimonial)

	app.Use("/ws", realtime.UpgradeGuard())
	app.Get("/ws", realtime.Handler(cfg.Realtime, cfg.Logger))
}
