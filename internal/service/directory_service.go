package service

import (
	"context"

	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/repository"
)

// DirectoryService serves the public staff and testimonial listings.
type DirectoryService struct {
	staff        repository.StaffRepository
	testimonials repository.TestimonialRepository
}

// NewDirectoryService builds the service.
func NewDirectoryService(staff repository.StaffRepository, testimonials repository.TestimonialRepository) *DirectoryService {
	return &DirectoryService{staff: staff, testimonials: testimonials}
}

// ListStaff returns the staff directory.
func (s *DirectoryService) ListStaff(ctx context.Context) ([]domain.StaffProfile, error) {
	return s.staff.List(ctx)
}

// CreateStaff adds a directory entry.
func (s *DirectoryService) CreateStaff(ctx context.Context, profile *domain.StaffProfile) error {
	return s.staff.Create(ctx, profile)
}

// ListTestimonials returns testimonials newest first.
func (s *DirectoryService) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.List(ctx)
}

// CreateTestimonial adds a testimonial.
func (s *DirectoryService) CreateTestimonial(ctx context.Context, testimonial *domain.Testimonial) error {
	return s.testimonials.Create(ctx, testimonial)
}
