package service

import (
	"context"
	"time"

	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/events"
	"github.com/rehab-center/clinic-service/internal/repository"
)

// AdminService covers user management, doctor approvals and leave
// decisions. Each decision is two independent steps: the store
// mutation, then an event publication for best-effort notification.
// A publish failure never rolls back or fails the mutation.
type AdminService struct {
	users      repository.UserRepository
	leaves     repository.LeaveRepository
	cache      *DoctorCache
	dispatcher events.Dispatcher
}

// NewAdminService builds the service.
func NewAdminService(users repository.UserRepository, leaves repository.LeaveRepository, cache *DoctorCache, dispatcher events.Dispatcher) *AdminService {
	return &AdminService{users: users, leaves: leaves, cache: cache, dispatcher: dispatcher}
}

// ListUsers returns every account.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes an account.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleDoctor {
		s.cache.Invalidate(ctx)
	}
	return nil
}

// PendingDoctors lists doctors awaiting approval.
func (s *AdminService) PendingDoctors(ctx context.Context) ([]domain.User, error) {
	return s.users.ListDoctors(ctx, false)
}

// ApprovedDoctors lists doctors already approved.
func (s *AdminService) ApprovedDoctors(ctx context.Context) ([]domain.User, error) {
	return s.users.ListDoctors(ctx, true)
}

// ApproveDoctor flips the approval flag and announces the decision.
func (s *AdminService) ApproveDoctor(ctx context.Context, id string) (*domain.User, error) {
	doctor, err := s.users.SetApproved(ctx, id, true)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventDoctorApproved,
		Timestamp: time.Now(),
		Payload: events.DoctorDecisionPayload{
			DoctorID:    doctor.ID,
			DoctorName:  doctor.Name,
			DoctorEmail: doctor.Email,
		},
	})
	return doctor, nil
}

// RejectDoctor deletes the registration and announces the decision.
func (s *AdminService) RejectDoctor(ctx context.Context, id string) (*domain.User, error) {
	doctor, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventDoctorRejected,
		Timestamp: time.Now(),
		Payload: events.DoctorDecisionPayload{
			DoctorID:    doctor.ID,
			DoctorName:  doctor.Name,
			DoctorEmail: doctor.Email,
		},
	})
	return doctor, nil
}

// ListLeaves returns every leave request, newest first.
func (s *AdminService) ListLeaves(ctx context.Context) ([]domain.Leave, error) {
	return s.leaves.List(ctx)
}

// DecideLeave sets a leave's status and announces the decision to the
// requester's realtime channel.
func (s *AdminService) DecideLeave(ctx context.Context, id string, status domain.LeaveStatus) (*domain.Leave, error) {
	leave, err := s.leaves.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	eventType := events.EventLeaveApproved
	if status == domain.LeaveStatusRejected {
		eventType = events.EventLeaveRejected
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Payload: events.LeaveDecisionPayload{
			LeaveID:  leave.ID,
			Name:     leave.Name,
			FromDate: leave.FromDate,
			ToDate:   leave.ToDate,
			Status:   leave.Status,
		},
	})
	return leave, nil
}
