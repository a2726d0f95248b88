package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleHasPermission(t *testing.T) {
	role := Role{
		Title: "EDITOR",
		Permissions: []Permission{
			{Code: PermLanguageCreate},
			{Code: PermLanguageUpdateOwn},
		},
	}

	assert.True(t, role.HasPermission(PermLanguageCreate))
	assert.False(t, role.HasPermission(PermLanguageSetState))
}

func TestUserWithoutRoleHasNoPermissions(t *testing.T) {
	user := User{}

	assert.False(t, user.HasPermission(PermLanguageCreate))
	assert.Empty(t, user.PermissionCodes())
}

func TestParseResourceState(t *testing.T) {
	state, err := ParseResourceState("APPROVED")
	require.NoError(t, err)
	assert.Equal(t, StateApproved, state)

	_, err = ParseResourceState("PUBLISHED")
	assert.Error(t, err)

	_, err = ParseResourceState("")
	assert.Error(t, err)
}

func TestReviewScoreDerivedFromVotes(t *testing.T) {
	review := Review{
		UpVoters:   []User{{BaseModel: BaseModel{ID: uuid.New()}}, {BaseModel: BaseModel{ID: uuid.New()}}},
		DownVoters: []User{{BaseModel: BaseModel{ID: uuid.New()}}},
	}

	assert.Equal(t, 1, review.Score())

	resp := review.ToResponse()
	assert.Equal(t, 1, resp.Score)
	assert.Len(t, resp.UpVotes, 2)
	assert.Len(t, resp.DownVotes, 1)
}
