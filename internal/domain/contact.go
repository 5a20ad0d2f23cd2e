package domain

import "time"

// Contact is a message submitted through the public contact page.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}
