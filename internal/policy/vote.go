package policy

import "github.com/google/uuid"

// VoteResult is the new vote membership after a cast. Both slices are
// complete replacements for the review's vote sets and are always
// disjoint.
type VoteResult struct {
	UpVotes   []uuid.UUID
	DownVotes []uuid.UUID
}

// Score derives the review score from the result's membership
func (r VoteResult) Score() int {
	return len(r.UpVotes) - len(r.DownVotes)
}

// CastVote is the single entry point for mutating a review's vote sets.
// Re-casting the vote the actor already holds fails with
// DuplicateVoteError; a prior opposite vote is silently flipped. The
// caller must run this inside the same atomic unit (row lock or
// transaction) that persists the result, so two concurrent identical
// votes cannot both pass the duplicate check.
func CastVote(upVotes, downVotes []uuid.UUID, actorID uuid.UUID, isUpvote bool) (VoteResult, error) {
	up := contains(upVotes, actorID)
	down := contains(downVotes, actorID)

	if isUpvote && up {
		return VoteResult{}, &DuplicateVoteError{Direction: VoteUp}
	}
	if !isUpvote && down {
		return VoteResult{}, &DuplicateVoteError{Direction: VoteDown}
	}

	if isUpvote {
		return VoteResult{
			UpVotes:   append(copyIDs(upVotes), actorID),
			DownVotes: remove(downVotes, actorID),
		}, nil
	}
	return VoteResult{
		UpVotes:   remove(upVotes, actorID),
		DownVotes: append(copyIDs(downVotes), actorID),
	}, nil
}

func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func copyIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids)+1)
	return append(out, ids...)
}

func remove(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
