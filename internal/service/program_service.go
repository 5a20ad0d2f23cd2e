package service

import (
	"context"

	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/repository"
)

// ProgramService coordinates the program catalog.
type ProgramService struct {
	programs repository.ProgramRepository
}

// NewProgramService builds the service.
func NewProgramService(programs repository.ProgramRepository) *ProgramService {
	return &ProgramService{programs: programs}
}

// ProgramInput describes program create/update payloads.
type ProgramInput struct {
	Title         string
	Summary       string
	Description   string
	DurationWeeks int
	Cost          int
	ImageURL      string
}

// List returns programs newest first.
func (s *ProgramService) List(ctx context.Context) ([]domain.Program, error) {
	return s.programs.List(ctx)
}

// GetBySlug returns one program by its slug.
func (s *ProgramService) GetBySlug(ctx context.Context, slug string) (*domain.Program, error) {
	return s.programs.GetBySlug(ctx, slug)
}

// Create stores a program, deriving its slug from the title.
func (s *ProgramService) Create(ctx context.Context, input ProgramInput) (*domain.Program, error) {
	title := input.Title
	if title == "" {
		title = "program"
	}

	program := &domain.Program{
		Title:         input.Title,
		Slug:          domain.Slugify(title),
		Summary:       input.Summary,
		Description:   input.Description,
		DurationWeeks: input.DurationWeeks,
		Cost:          input.Cost,
		ImageURL:      input.ImageURL,
	}
	if err := s.programs.Create(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

// Update replaces a program's fields, recomputing the slug.
func (s *ProgramService) Update(ctx context.Context, id string, input ProgramInput) (*domain.Program, error) {
	title := input.Title
	if title == "" {
		title = "program"
	}

	return s.programs.Update(ctx, &domain.Program{
		ID:            id,
		Title:         input.Title,
		Slug:          domain.Slugify(title),
		Summary:       input.Summary,
		Description:   input.Description,
		DurationWeeks: input.DurationWeeks,
		Cost:          input.Cost,
		ImageURL:      input.ImageURL,
	})
}

// Delete removes a program.
func (s *ProgramService) Delete(ctx context.Context, id string) error {
	return s.programs.Delete(ctx, id)
}
