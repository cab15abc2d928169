package validator

import (
	"testing"

	domainerrors "bulletin/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func TestValidate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&signUp{Email: "a@example.com", Password: "password1"}))
	})

	t.Run("invalid fields are reported by json name", func(t *testing.T) {
		err := v.Validate(&signUp{Email: "nope", Password: "short"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "must be a valid email address", validationErr.Fields["email"])
		assert.Equal(t, "must be at least 8 characters", validationErr.Fields["password"])
		assert.Equal(t, "email must be a valid email address; password must be at least 8 characters", validationErr.Details())
		assert.Equal(t, 400, validationErr.HTTPCode())
	})
}
