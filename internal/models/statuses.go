package models

type UserRole string

const (
	UserRoleUser       UserRole = "user"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"
)

// IsAdminRole - true для admin и super_admin
func IsAdminRole(role UserRole) bool {
	return role == UserRoleAdmin || role == UserRoleSuperAdmin
}

// ValidRole проверяет, что роль из допустимого набора
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleUser, UserRoleAdmin, UserRoleSuperAdmin:
		return true
	default:
		return false
	}
}
