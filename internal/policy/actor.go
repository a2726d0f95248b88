// Package policy holds the authorization, moderation and voting rules
// shared by languages, frameworks and reviews. Every function here is a
// pure decision over an explicitly passed Actor; nothing reads request
// state or touches the database.
package policy

import "github.com/google/uuid"

// Actor is the identity making a request, resolved once per request by
// the auth middleware and passed explicitly through every check.
type Actor struct {
	ID            uuid.UUID
	Authenticated bool
	permissions   map[string]struct{}
}

// NewActor builds an authenticated actor from a user id and the
// permission codes granted by their role.
func NewActor(id uuid.UUID, permissionCodes []string) Actor {
	perms := make(map[string]struct{}, len(permissionCodes))
	for _, code := range permissionCodes {
		perms[code] = struct{}{}
	}
	return Actor{ID: id, Authenticated: true, permissions: perms}
}

// Anonymous returns the unauthenticated actor. It holds no permissions
// and can never satisfy an authorship check.
func Anonymous() Actor {
	return Actor{}
}
