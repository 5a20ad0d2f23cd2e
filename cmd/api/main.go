package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/rehab-center/clinic-service/internal/api/http"
	"github.com/rehab-center/clinic-service/internal/api/http/handlers"
	"github.com/rehab-center/clinic-service/internal/auth"
	"github.com/rehab-center/clinic-service/internal/bootstrap"
	"github.com/rehab-center/clinic-service/internal/config"
	"github.com/rehab-center/clinic-service/internal/events"
	"github.com/rehab-center/clinic-service/internal/observability"
	"github.com/rehab-center/clinic-service/internal/persistence"
	"github.com/rehab-center/clinic-service/internal/realtime"
	"github.com/rehab-center/clinic-service/internal/repository"
	"github.com/rehab-center/clinic-service/internal/service"
	"github.com/rehab-center/clinic-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	programRepo := repository.NewProgramRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)

	doctorCache := service.NewDoctorCache(redis, cfg.Auth.DoctorCacheTTL())
	dispatcher := events.NewInMemoryDispatcher()
	registry := realtime.NewRegistry(logger)

	authService := service.NewAuthService(cfg.Auth, userRepo, doctorCache)
	adminService := service.NewAdminService(userRepo, leaveRepo, doctorCache, dispatcher)
	appointmentService := service.NewAppointmentService(appointmentRepo)
	programService := service.NewProgramService(programRepo)
	leaveService := service.NewLeaveService(leaveRepo)
	contactService := service.NewContactService(contactRepo)
	directoryService := service.NewDirectoryService(staffRepo, testimonialRepo)
	notificationService := service.NewNotificationService(dispatcher, registry, logger)
	worker.StartNotificationWorker(notificationService)

	if err := bootstrap.Seed(ctx, cfg.Bootstrap, cfg.Auth.BcryptCost, userRepo, programRepo, logger); err != nil {
		logger.Fatal("failed to seed bootstrap data", zap.Error(err))
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.CORS)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Patient:        handlers.NewPatientHandler(appointmentService),
		Doctor:         handlers.NewDoctorHandler(appointmentService),
		Admin:          handlers.NewAdminHandler(adminService),
		Leave:          handlers.NewLeaveHandler(leaveService),
		Contact:        handlers.NewContactHandler(contactService),
		Program:        handlers.NewProgramHandler(programService),
		Appointment:    handlers.NewAppointmentHandler(appointmentService),
		Directory:      handlers.NewDirectoryHandler(directoryService),
		AuthMiddleware: authMiddleware,
		Realtime:       registry,
		Logger:         logger,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
