package service

import (
	"context"

	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/repository"
)

// ContactService stores and manages contact-page messages.
type ContactService struct {
	contacts repository.ContactRepository
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// ContactInput describes a contact message payload.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Send stores a new message.
func (s *ContactService) Send(ctx context.Context, input ContactInput) (*domain.Contact, error) {
	contact := &domain.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Messages lists messages newest first.
func (s *ContactService) Messages(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.List(ctx)
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.contacts.Delete(ctx, id)
}
