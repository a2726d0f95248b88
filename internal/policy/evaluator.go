package policy

import "github.com/google/uuid"

// HasPermission reports whether the actor holds the given permission
// code. Anonymous actors hold no permissions.
func HasPermission(actor Actor, permission string) bool {
	if !actor.Authenticated {
		return false
	}
	_, ok := actor.permissions[permission]
	return ok
}

// HasPermissionOrIsAuthor is the shared rule behind every mutate/delete
// endpoint: the action is allowed if the actor may act on others'
// resources, or if the actor authored this resource and may act on
// their own. A nil authorID (author deleted) never matches, so only the
// "others" branch can apply.
func HasPermissionOrIsAuthor(actor Actor, permOthers, permOwn string, authorID *uuid.UUID) bool {
	if HasPermission(actor, permOthers) {
		return true
	}
	if authorID == nil || !actor.Authenticated || actor.ID != *authorID {
		return false
	}
	return HasPermission(actor, permOwn)
}
