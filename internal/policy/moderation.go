package policy

import "progee-api/internal/model"

// ResolveState computes the moderation state a resource gets when its
// content is written. Actors holding the kind's set-state permission
// self-approve; everyone else lands in the review queue. The same rule
// runs on create and on every content update, so an approved resource
// edited by a non-moderator reverts to WAITING and gets re-reviewed.
func ResolveState(actor Actor, setStatePerm string) model.ResourceState {
	if HasPermission(actor, setStatePerm) {
		return model.StateApproved
	}
	return model.StateWaiting
}

// AuthorizeStateChange gates the explicit state-set action. Authorship
// is irrelevant here: only the set-state permission counts, and a
// moderator may set any of the three states directly.
func AuthorizeStateChange(actor Actor, setStatePerm string) error {
	if !HasPermission(actor, setStatePerm) {
		return ErrNotEnoughPermission
	}
	return nil
}
