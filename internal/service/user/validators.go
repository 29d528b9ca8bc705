package user

import "strings"

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

// isAssignableRole reports whether role may be set via the explicit
// role endpoint. "rider" is excluded: it is only ever reached through
// the rider-approval cascade.
func isAssignableRole(role string) bool {
	switch role {
	case "admin", "user":
		return true
	default:
		return false
	}
}
