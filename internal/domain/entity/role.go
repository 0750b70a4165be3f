// Package entity contains the core business objects of the project.
package entity

// Role is the authorization principal class a request is evaluated as.
type Role string

const (
	// RoleGuest is an anonymous visitor, authorized through the public API key.
	RoleGuest Role = "guest"
	// RoleAuthenticated is any signed-in customer.
	RoleAuthenticated Role = "authenticated"
	// RoleAdmin is a signed-in member of the admin group.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleAuthenticated, RoleAdmin:
		return true
	default:
		return false
	}
}
