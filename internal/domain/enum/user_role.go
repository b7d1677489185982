package enum

// UserRole represents the access level of a staff account
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleReception UserRole = "reception"
	UserRoleManager   UserRole = "manager"
)

// IsValid reports whether the value is a known role
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleReception, UserRoleManager:
		return true
	}
	return false
}
