package exception_test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"public-chat-app/exception"
)

type sampleRequest struct {
	Username string `validate:"required,min=3,max=20"`
	Email    string `validate:"required,email"`
}

func TestTranslate(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(&sampleRequest{Username: "ab", Email: "nope"})
	require.Error(t, err)

	translated := exception.Translate(err)
	var validationErr *exception.ValidationError
	require.ErrorAs(t, translated, &validationErr)

	assert.Equal(t, "Username must be at least 3 characters", validationErr.Message)
	assert.Equal(t, "Username must be at least 3 characters", validationErr.Fields["username"])
	assert.Equal(t, "Invalid email address", validationErr.Fields["email"])
}

func TestTranslatePassthrough(t *testing.T) {
	sentinel := errors.New("boom")
	assert.Same(t, sentinel, exception.Translate(sentinel))
}
