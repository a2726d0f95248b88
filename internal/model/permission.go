package model

// Permission represents an atomic capability that can be bundled into roles
type Permission struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "language:create"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Create Language"
}

// Permission codes, grouped per resource kind. The catalog is closed:
// these constants are the only codes the system ever checks.
const (
	// Language management
	PermLanguageCreate       = "language:create"
	PermLanguageUpdateOwn    = "language:update_own"
	PermLanguageUpdateOthers = "language:update_others"
	PermLanguageDeleteOwn    = "language:delete_own"
	PermLanguageDeleteOthers = "language:delete_others"
	PermLanguageSetState     = "language:set_state"
	PermLanguageViewByState  = "language:view_by_state"

	// Framework management
	PermFrameworkCreate       = "framework:create"
	PermFrameworkUpdateOwn    = "framework:update_own"
	PermFrameworkUpdateOthers = "framework:update_others"
	PermFrameworkDeleteOwn    = "framework:delete_own"
	PermFrameworkDeleteOthers = "framework:delete_others"
	PermFrameworkSetState     = "framework:set_state"
	PermFrameworkViewByState  = "framework:view_by_state"

	// Review management
	PermReviewCreate       = "review:create"
	PermReviewUpdateOwn    = "review:update_own"
	PermReviewUpdateOthers = "review:update_others"
	PermReviewDeleteOwn    = "review:delete_own"
	PermReviewDeleteOthers = "review:delete_others"
	PermReviewSetState     = "review:set_state"
	PermReviewViewByState  = "review:view_by_state"

	// User management
	PermUserUpdateOwn    = "user:update_own"
	PermUserUpdateOthers = "user:update_others"
	PermUserDeleteOwn    = "user:delete_own"
	PermUserDeleteOthers = "user:delete_others"
	PermUserSetRole      = "user:set_role"

	// Role management
	PermRoleView   = "role:view"
	PermRoleCreate = "role:create"
	PermRoleUpdate = "role:update"
	PermRoleDelete = "role:delete"
)

// Default permissions for the system
var DefaultPermissions = []Permission{
	// Language management
	{Code: PermLanguageCreate, Name: "Create Language"},
	{Code: PermLanguageUpdateOwn, Name: "Update Own Language"},
	{Code: PermLanguageUpdateOthers, Name: "Update Others' Language"},
	{Code: PermLanguageDeleteOwn, Name: "Delete Own Language"},
	{Code: PermLanguageDeleteOthers, Name: "Delete Others' Language"},
	{Code: PermLanguageSetState, Name: "Set Language State"},
	{Code: PermLanguageViewByState, Name: "View Languages By State"},
	// Framework management
	{Code: PermFrameworkCreate, Name: "Create Framework"},
	{Code: PermFrameworkUpdateOwn, Name: "Update Own Framework"},
	{Code: PermFrameworkUpdateOthers, Name: "Update Others' Framework"},
	{Code: PermFrameworkDeleteOwn, Name: "Delete Own Framework"},
	{Code: PermFrameworkDeleteOthers, Name: "Delete Others' Framework"},
	{Code: PermFrameworkSetState, Name: "Set Framework State"},
	{Code: PermFrameworkViewByState, Name: "View Frameworks By State"},
	// Review management
	{Code: PermReviewCreate, Name: "Create Review"},
	{Code: PermReviewUpdateOwn, Name: "Update Own Review"},
	{Code: PermReviewUpdateOthers, Name: "Update Others' Review"},
	{Code: PermReviewDeleteOwn, Name: "Delete Own Review"},
	{Code: PermReviewDeleteOthers, Name: "Delete Others' Review"},
	{Code: PermReviewSetState, Name: "Set Review State"},
	{Code: PermReviewViewByState, Name: "View Reviews By State"},
	// User management
	{Code: PermUserUpdateOwn, Name: "Update Own Profile"},
	{Code: PermUserUpdateOthers, Name: "Update Other Users"},
	{Code: PermUserDeleteOwn, Name: "Delete Own Account"},
	{Code: PermUserDeleteOthers, Name: "Delete Other Users"},
	{Code: PermUserSetRole, Name: "Change User Role"},
	// Role management
	{Code: PermRoleView, Name: "View Roles"},
	{Code: PermRoleCreate, Name: "Create Role"},
	{Code: PermRoleUpdate, Name: "Update Role"},
	{Code: PermRoleDelete, Name: "Delete Role"},
}
