package service

import "mediashelf/internal/httpapi/models"

// Actor is the request-scoped identity every operation receives explicitly,
// extracted from the access token by the auth middleware. Services never
// read identity from ambient state.
type Actor struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the acting user holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
