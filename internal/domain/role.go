package domain

import "fmt"

// Role enumerates account roles. The set is closed: gates declare their
// allow-lists as literals over these constants.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleDoctor    Role = "doctor"
	RoleTherapist Role = "therapist"
	RoleStaff     Role = "staff"
	RolePatient   Role = "patient"
	RoleVisitor   Role = "visitor"
	RoleUser      Role = "user"
)

// DefaultRole is assigned when signup omits a role.
const DefaultRole = RoleVisitor

// ParseRole validates a raw role string against the closed set.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleManager, RoleDoctor, RoleTherapist, RoleStaff, RolePatient, RoleVisitor, RoleUser:
		return Role(raw), nil
	case "":
		return DefaultRole, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}
