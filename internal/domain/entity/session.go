package entity

import "github.com/google/uuid"

// Session identifies the acting user for one request or scan stream.
// It is passed explicitly instead of living in process-wide state.
type Session struct {
	UserID uuid.UUID
	Roles  Roles
}

// IsVendor reports whether the session may administer a vendor listing.
func (s Session) IsVendor() bool {
	return s.Roles.Contains(RoleVendor)
}
