package domain

import "time"

// Testimonial is a public review left by a former patient.
type Testimonial struct {
	ID        string
	Author    string
	Quote     string
	Rating    int
	CreatedAt time.Time
}
