package models

const (
	RoleUser      = "user"
	RoleStaff     = "staff"
	RoleSuperuser = "superuser"
)

// Role names the highest privilege the account's flags grant.
func (a Account) Role() string {
	switch {
	case a.IsSuperuser:
		return RoleSuperuser
	case a.IsStaff:
		return RoleStaff
	default:
		return RoleUser
	}
}
