package domain

// StaffProfile is a public directory entry for a staff member.
type StaffProfile struct {
	ID       string
	Name     string
	Role     string
	Bio      string
	PhotoURL string
}
