package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVote_FirstUpVote(t *testing.T) {
	voter := uuid.New()

	res, err := CastVote(nil, nil, voter, true)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{voter}, res.UpVotes)
	assert.Empty(t, res.DownVotes)
	assert.Equal(t, 1, res.Score())
}

func TestCastVote_DuplicateUpVoteRejected(t *testing.T) {
	voter := uuid.New()

	res, err := CastVote(nil, nil, voter, true)
	require.NoError(t, err)

	_, err = CastVote(res.UpVotes, res.DownVotes, voter, true)
	var dup *DuplicateVoteError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, VoteUp, dup.Direction)

	// Membership is untouched by the rejected cast
	assert.Equal(t, []uuid.UUID{voter}, res.UpVotes)
	assert.Empty(t, res.DownVotes)
}

func TestCastVote_DuplicateDownVoteRejected(t *testing.T) {
	voter := uuid.New()

	res, err := CastVote(nil, nil, voter, false)
	require.NoError(t, err)

	_, err = CastVote(res.UpVotes, res.DownVotes, voter, false)
	var dup *DuplicateVoteError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, VoteDown, dup.Direction)
}

// Flipping a vote is allowed and moves the score by two.
func TestCastVote_FlipUpToDown(t *testing.T) {
	voter := uuid.New()

	upVoted, err := CastVote(nil, nil, voter, true)
	require.NoError(t, err)
	require.Equal(t, 1, upVoted.Score())

	flipped, err := CastVote(upVoted.UpVotes, upVoted.DownVotes, voter, false)
	require.NoError(t, err)
	assert.NotContains(t, flipped.UpVotes, voter)
	assert.Contains(t, flipped.DownVotes, voter)
	assert.Equal(t, upVoted.Score()-2, flipped.Score())
}

func TestCastVote_SetsStayDisjoint(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	up := []uuid.UUID{a, b}
	down := []uuid.UUID{c}

	// b flips down, c flips up, a stays put
	res, err := CastVote(up, down, b, false)
	require.NoError(t, err)
	res, err = CastVote(res.UpVotes, res.DownVotes, c, true)
	require.NoError(t, err)

	for _, id := range res.UpVotes {
		assert.NotContains(t, res.DownVotes, id)
	}
	assert.ElementsMatch(t, []uuid.UUID{a, c}, res.UpVotes)
	assert.ElementsMatch(t, []uuid.UUID{b}, res.DownVotes)
	assert.Equal(t, 1, res.Score())
}

func TestCastVote_DoesNotMutateInputs(t *testing.T) {
	a := uuid.New()
	voter := uuid.New()

	up := []uuid.UUID{a}
	down := []uuid.UUID{voter}

	res, err := CastVote(up, down, voter, true)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{a}, up)
	assert.Equal(t, []uuid.UUID{voter}, down)
	assert.ElementsMatch(t, []uuid.UUID{a, voter}, res.UpVotes)
	assert.Empty(t, res.DownVotes)
}
