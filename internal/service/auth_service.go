package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rehab-center/clinic-service/internal/auth"
	"github.com/rehab-center/clinic-service/internal/config"
	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/repository"
	apperrors "github.com/rehab-center/clinic-service/pkg/util"
)

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	cache      *DoctorCache
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, cache *DoctorCache) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		cache:      cache,
		bcryptCost: cfg.BcryptCost,
	}
}

// SignupInput describes a new account request.
type SignupInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	Institution *string
}

// Signup creates an account. Doctors start unapproved and cannot log in
// until an admin approves them; every other role is approved on the spot.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("user already exists", map[string]any{"email": email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Institution:  input.Institution,
		IsApproved:   role != domain.RoleDoctor,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates an account and issues a bearer token. Approval
// precedes token issuance: an unapproved doctor is rejected even with
// correct credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}

	if user.RequiresApproval() && !user.IsApproved {
		return nil, "", time.Time{}, apperrors.NewForbidden("account pending admin approval")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ApprovedDoctors lists approved doctors for the public booking
// dropdown, served from cache when fresh.
func (s *AuthService) ApprovedDoctors(ctx context.Context) ([]DoctorSummary, error) {
	if doctors, ok := s.cache.Get(ctx); ok {
		return doctors, nil
	}

	users, err := s.users.ListDoctors(ctx, true)
	if err != nil {
		return nil, err
	}
	doctors := make([]DoctorSummary, 0, len(users))
	for _, u := range users {
		doctors = append(doctors, DoctorSummary{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	s.cache.Set(ctx, doctors)
	return doctors, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
