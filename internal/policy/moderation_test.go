package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progee-api/internal/model"
)

func TestResolveState_CreatorWithoutSetState(t *testing.T) {
	actor := NewActor(uuid.New(), []string{model.PermFrameworkCreate})

	state := ResolveState(actor, model.PermFrameworkSetState)
	assert.Equal(t, model.StateWaiting, state)
}

func TestResolveState_CreatorWithSetState(t *testing.T) {
	actor := NewActor(uuid.New(), []string{model.PermFrameworkCreate, model.PermFrameworkSetState})

	state := ResolveState(actor, model.PermFrameworkSetState)
	assert.Equal(t, model.StateApproved, state)
}

func TestResolveState_Anonymous(t *testing.T) {
	state := ResolveState(Anonymous(), model.PermLanguageSetState)
	assert.Equal(t, model.StateWaiting, state)
}

// Editing re-runs the create-time rule: an approved resource edited by
// an author who cannot self-approve goes back to the review queue.
func TestResolveState_EditRevertsApproval(t *testing.T) {
	author := NewActor(uuid.New(), []string{model.PermLanguageUpdateOwn})

	state := ResolveState(author, model.PermLanguageSetState)
	assert.Equal(t, model.StateWaiting, state)
}

func TestAuthorizeStateChange(t *testing.T) {
	moderator := NewActor(uuid.New(), []string{model.PermReviewSetState})
	require.NoError(t, AuthorizeStateChange(moderator, model.PermReviewSetState))

	plain := NewActor(uuid.New(), []string{model.PermReviewCreate})
	assert.ErrorIs(t, AuthorizeStateChange(plain, model.PermReviewSetState), ErrNotEnoughPermission)

	assert.ErrorIs(t, AuthorizeStateChange(Anonymous(), model.PermReviewSetState), ErrNotEnoughPermission)
}
