package dto

import "github.com/rehab-center/clinic-service/internal/domain"

// StaffCreateRequest payload for directory entries.
type StaffCreateRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photoUrl"`
}

// StaffResponse is the public shape of a staff profile.
type StaffResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photoUrl"`
}

// NewStaffResponses maps a slice.
func NewStaffResponses(staff []domain.StaffProfile) []StaffResponse {
	out := make([]StaffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, StaffResponse{ID: s.ID, Name: s.Name, Role: s.Role, Bio: s.Bio, PhotoURL: s.PhotoURL})
	}
	return out
}

// TestimonialCreateRequest payload for testimonials.
type TestimonialCreateRequest struct {
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

// TestimonialResponse is the public shape of a testimonial.
type TestimonialResponse struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

// NewTestimonialResponses maps a slice.
func NewTestimonialResponses(testimonials []domain.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		out = append(out, TestimonialResponse{ID: t.ID, Author: t.Author, Quote: t.Quote, Rating: t.Rating})
	}
	return out
}
