package handlers

import "regexp"

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// validPhone checks the 10-digit phone format used across booking and
// contact payloads.
func validPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
