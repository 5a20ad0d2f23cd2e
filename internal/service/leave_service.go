package service

import (
	"context"

	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/repository"
)

// LeaveService handles leave submission and per-requester listing.
type LeaveService struct {
	leaves repository.LeaveRepository
}

// NewLeaveService builds the service.
func NewLeaveService(leaves repository.LeaveRepository) *LeaveService {
	return &LeaveService{leaves: leaves}
}

// LeaveInput describes a leave request payload.
type LeaveInput struct {
	Name     string
	Reason   string
	FromDate string
	ToDate   string
}

// Request submits a leave request in the Pending state.
func (s *LeaveService) Request(ctx context.Context, input LeaveInput) (*domain.Leave, error) {
	leave := &domain.Leave{
		Name:     input.Name,
		Reason:   input.Reason,
		FromDate: input.FromDate,
		ToDate:   input.ToDate,
		Status:   domain.LeaveStatusPending,
	}
	if err := s.leaves.Create(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// MyLeaves lists one requester's leaves, newest first.
func (s *LeaveService) MyLeaves(ctx context.Context, name string) ([]domain.Leave, error) {
	return s.leaves.ListByName(ctx, name)
}
