package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Skipped  string `json:"-" validate:"omitempty"`
}

func TestValidate_ValidStruct(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(sampleInput{Username: "vasya", Email: "v@example.com"})
	assert.NoError(t, err)
}

// TestValidate_UsesJSONFieldNames - в карте ошибок имена полей из json-тегов
func TestValidate_UsesJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(sampleInput{Username: "", Email: "not-an-email"})

	verr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "is required", verr.Errors["username"])
	assert.Equal(t, "must be a valid email address", verr.Errors["email"])
}

func TestValidate_MinMessage(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(sampleInput{Username: "ab", Email: "v@example.com"})

	verr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "must be at least 3 characters long", verr.Errors["username"])
}

func TestValidationError_ErrorString(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: map[string]string{"email": "is required"}}
	assert.Contains(t, err.Error(), "Validation failed")
	assert.Contains(t, err.Error(), "field 'email': is required")
}
