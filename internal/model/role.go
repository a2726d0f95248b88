package model

// Role represents a named bundle of permissions assigned to users.
// Exactly one role in the system may be marked as the default; it is
// assigned to newly registered users.
type Role struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"type:varchar(100);uniqueIndex;not null" json:"title"`
	IsDefault   bool         `gorm:"default:false" json:"is_default"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

// Role titles seeded at startup
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleModerator  = "MODERATOR"
	RoleUser       = "USER"
)

// DefaultRoles defines the roles seeded at startup. USER is the default
// role for new registrations.
var DefaultRoles = []Role{
	{Title: RoleSuperAdmin},
	{Title: RoleModerator},
	{Title: RoleUser, IsDefault: true},
}

// HasPermission checks if the role grants a specific permission code
func (r *Role) HasPermission(code string) bool {
	for _, p := range r.Permissions {
		if p.Code == code {
			return true
		}
	}
	return false
}

// PermissionCodes returns a slice of all permission codes granted by this role
func (r *Role) PermissionCodes() []string {
	codes := make([]string, len(r.Permissions))
	for i, p := range r.Permissions {
		codes[i] = p.Code
	}
	return codes
}
