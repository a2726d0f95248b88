package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	Name       string    `validate:"required"`
	LanguageID uuid.UUID `validate:"uuid_required"`
}

func TestValidate(t *testing.T) {
	valid := createRequest{Name: "Gin", LanguageID: uuid.New()}
	require.NoError(t, Validate(valid))

	missingName := createRequest{LanguageID: uuid.New()}
	err := Validate(missingName)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name")
	assert.Contains(t, err.Error(), "required")
}

func TestValidate_ZeroUUIDIsMissing(t *testing.T) {
	req := createRequest{Name: "Gin"}

	err := Validate(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LanguageID")
	assert.Contains(t, err.Error(), "uuid_required")
}
