package bootstrap

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rehab-center/clinic-service/internal/auth"
	"github.com/rehab-center/clinic-service/internal/config"
	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/repository"
)

type seedAccount struct {
	name  string
	email string
	role  domain.Role
}

// Seed ensures the bootstrap admin account exists and, when enabled,
// creates one sample account per role plus a starter program catalog.
// Every step is idempotent: existing records are left alone.
func Seed(ctx context.Context, cfg config.BootstrapConfig, bcryptCost int, users repository.UserRepository, programs repository.ProgramRepository, logger *zap.Logger) error {
	accounts := []seedAccount{
		{name: cfg.AdminName, email: cfg.AdminEmail, role: domain.RoleAdmin},
	}
	if cfg.SeedSamples {
		accounts = append(accounts,
			seedAccount{name: "Manager User", email: "manager@rehab.local", role: domain.RoleManager},
			seedAccount{name: "Doctor User", email: "doctor@rehab.local", role: domain.RoleDoctor},
			seedAccount{name: "Therapist User", email: "therapist@rehab.local", role: domain.RoleTherapist},
			seedAccount{name: "Normal User", email: "user@rehab.local", role: domain.RoleUser},
		)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword, bcryptCost)
	if err != nil {
		return err
	}

	for _, acc := range accounts {
		if _, err := users.GetByEmail(ctx, acc.email); err == nil {
			continue
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		user := &domain.User{
			Name:         acc.name,
			Email:        acc.email,
			PasswordHash: hash,
			Role:         acc.role,
			IsApproved:   true,
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		logger.Info("seeded account", zap.String("email", acc.email), zap.String("role", string(acc.role)))
	}

	if !cfg.SeedSamples {
		return nil
	}

	count, err := programs.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []domain.Program{
		{Title: "Physio Rehab", Slug: "physio-rehab", Summary: "Physical therapy program", Description: "Focus on mobility", DurationWeeks: 6, Cost: 12000},
		{Title: "Addiction Support", Slug: "addiction-support", Summary: "Substance dependence support", Description: "Counseling & group sessions", DurationWeeks: 12, Cost: 0},
		{Title: "Mental Wellness", Slug: "mental-wellness", Summary: "Therapy program", Description: "Counseling + mindfulness", DurationWeeks: 8, Cost: 8000},
	}
	for i := range samples {
		if err := programs.Create(ctx, &samples[i]); err != nil {
			return err
		}
	}
	logger.Info("seeded programs", zap.Int("count", len(samples)))
	return nil
}
