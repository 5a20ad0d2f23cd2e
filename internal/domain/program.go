package domain

import (
	"strings"
	"time"
	"unicode"
)

// Program describes a rehabilitation program offered by the center.
type Program struct {
	ID            string
	Title         string
	Slug          string
	Summary       string
	Description   string
	DurationWeeks int
	Cost          int
	ImageURL      string
	CreatedAt     time.Time
}

// Slugify derives a URL slug from a title: lowercase, spaces to dashes,
// everything outside [a-z0-9-] dropped.
func Slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	for _, r := range lowered {
		switch {
		case unicode.IsSpace(r):
			b.WriteByte('-')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
