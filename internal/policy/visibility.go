package policy

import "progee-api/internal/model"

// ResolveListState decides which moderation state a list query may
// expose. A caller-supplied state filter requires the kind's
// view-by-state permission; without the permission an explicit filter
// is rejected, and an absent filter silently narrows to APPROVED.
// Privileged callers with no filter see everything (nil means
// unfiltered).
func ResolveListState(actor Actor, viewByStatePerm string, requested *model.ResourceState) (*model.ResourceState, error) {
	if HasPermission(actor, viewByStatePerm) {
		return requested, nil
	}
	if requested != nil {
		return nil, ErrNotEnoughPermission
	}
	approved := model.StateApproved
	return &approved, nil
}

// AuthorizeDetailRead decides whether a single fetched resource may be
// shown. A non-approved resource is refused outright, with the same
// error class as any other permission failure, rather than pretending
// it does not exist.
func AuthorizeDetailRead(actor Actor, viewByStatePerm string, state model.ResourceState) error {
	if state == model.StateApproved {
		return nil
	}
	if !HasPermission(actor, viewByStatePerm) {
		return ErrNotEnoughPermission
	}
	return nil
}
