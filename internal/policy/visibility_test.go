package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progee-api/internal/model"
)

func TestResolveListState_AnonymousNoFilter(t *testing.T) {
	state, err := ResolveListState(Anonymous(), model.PermLanguageViewByState, nil)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, model.StateApproved, *state)
}

func TestResolveListState_AnonymousExplicitFilter(t *testing.T) {
	waiting := model.StateWaiting
	_, err := ResolveListState(Anonymous(), model.PermLanguageViewByState, &waiting)
	assert.ErrorIs(t, err, ErrNotEnoughPermission)
}

func TestResolveListState_UnprivilegedExplicitFilter(t *testing.T) {
	actor := NewActor(uuid.New(), []string{model.PermLanguageCreate})
	declined := model.StateDeclined

	_, err := ResolveListState(actor, model.PermLanguageViewByState, &declined)
	assert.ErrorIs(t, err, ErrNotEnoughPermission)
}

func TestResolveListState_PrivilegedKeepsFilter(t *testing.T) {
	actor := NewActor(uuid.New(), []string{model.PermLanguageViewByState})
	waiting := model.StateWaiting

	state, err := ResolveListState(actor, model.PermLanguageViewByState, &waiting)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, model.StateWaiting, *state)
}

func TestResolveListState_PrivilegedNoFilterUnconstrained(t *testing.T) {
	actor := NewActor(uuid.New(), []string{model.PermLanguageViewByState})

	state, err := ResolveListState(actor, model.PermLanguageViewByState, nil)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestAuthorizeDetailRead(t *testing.T) {
	moderator := NewActor(uuid.New(), []string{model.PermReviewViewByState})
	plain := NewActor(uuid.New(), []string{model.PermReviewCreate})

	// Approved resources are visible to everyone
	assert.NoError(t, AuthorizeDetailRead(Anonymous(), model.PermReviewViewByState, model.StateApproved))
	assert.NoError(t, AuthorizeDetailRead(plain, model.PermReviewViewByState, model.StateApproved))

	// Non-approved resources require the view-by-state permission
	assert.ErrorIs(t, AuthorizeDetailRead(Anonymous(), model.PermReviewViewByState, model.StateWaiting), ErrNotEnoughPermission)
	assert.ErrorIs(t, AuthorizeDetailRead(plain, model.PermReviewViewByState, model.StateDeclined), ErrNotEnoughPermission)
	assert.NoError(t, AuthorizeDetailRead(moderator, model.PermReviewViewByState, model.StateWaiting))
	assert.NoError(t, AuthorizeDetailRead(moderator, model.PermReviewViewByState, model.StateDeclined))
}
