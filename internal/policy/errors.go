package policy

import (
	"errors"
	"fmt"
)

// ErrNotEnoughPermission rejects an action the actor is not allowed to
// perform. It is an authorization failure, distinct from a missing
// resource; callers must never convert one into the other.
var ErrNotEnoughPermission = errors.New("not enough permission")

// VoteDirection names which way a vote was cast, for error messages
type VoteDirection string

const (
	VoteUp   VoteDirection = "up-vote"
	VoteDown VoteDirection = "down-vote"
)

// DuplicateVoteError rejects re-casting the vote the actor already
// holds. Flipping to the opposite direction is not an error.
type DuplicateVoteError struct {
	Direction VoteDirection
}

func (e *DuplicateVoteError) Error() string {
	return fmt.Sprintf("duplicate %s: vote already cast", e.Direction)
}
