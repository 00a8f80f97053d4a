// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is carried in the access token and gates the vendor self-service API.
type Role string

const (
	// RoleStudent may scan vendor codes and redeem discounts.
	RoleStudent Role = "student"
	// RoleVendor administers the vendor listing it owns.
	RoleVendor Role = "vendor"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleVendor
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings drops unknown and repeated roles from token claims.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
