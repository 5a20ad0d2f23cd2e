package dto

import (
	"time"

	"github.com/rehab-center/clinic-service/internal/domain"
)

// ProgramRequest payload for create/update.
type ProgramRequest struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	Description   string `json:"description"`
	DurationWeeks int    `json:"durationWeeks"`
	Cost          int    `json:"cost"`
	ImageURL      string `json:"imageUrl"`
}

// ProgramResponse is the public shape of a program.
type ProgramResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Summary       string    `json:"summary"`
	Description   string    `json:"description"`
	DurationWeeks int       `json:"durationWeeks"`
	Cost          int       `json:"cost"`
	ImageURL      string    `json:"imageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewProgramResponse maps a domain program.
func NewProgramResponse(p *domain.Program) ProgramResponse {
	return ProgramResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Summary:       p.Summary,
		Description:   p.Description,
		DurationWeeks: p.DurationWeeks,
		Cost:          p.Cost,
		ImageURL:      p.ImageURL,
		CreatedAt:     p.CreatedAt,
	}
}

// NewProgramResponses maps a slice.
func NewProgramResponses(programs []domain.Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(programs))
	for i := range programs {
		out = append(out, NewProgramResponse(&programs[i]))
	}
	return out
}
