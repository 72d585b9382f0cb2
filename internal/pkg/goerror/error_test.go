package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidInput(t *testing.T) {
	err := NewInvalidInput("Invalid email request",
		"sender_email", "sender_email must be a valid email address",
		"subject", "subject is a required field",
		"dangling",
	)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, TypeValidation, gerr.Type())
	assert.Equal(t, CodeInvalidInput, gerr.Code())
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	assert.Equal(t, "Invalid email request", gerr.Error())
	assert.Equal(t, []string{
		"sender_email must be a valid email address",
		"subject is a required field",
	}, gerr.Details())
	assert.Equal(t, map[string]string{
		"sender_email": "sender_email must be a valid email address",
		"subject":      "subject is a required field",
	}, gerr.Fields())
}

func TestNewBusinessKeepsCause(t *testing.T) {
	cause := errors.New("unknown provider")

	err := NewBusiness(cause, "unknown integration provider: UNKNOWN", CodeUnknownProvider)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "unknown integration provider: UNKNOWN", gerr.Msg())
	assert.Equal(t, []string{"unknown integration provider: UNKNOWN"}, gerr.Details())
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	assert.True(t, Is(err, TypeBusiness))
	assert.False(t, Is(err, TypeValidation))
}

func TestNewServerHidesCause(t *testing.T) {
	err := NewServer(errors.New("db exploded"))

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
	assert.Contains(t, gerr.String(), "db exploded")
}

func TestNewInvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		msgs []string
		want string
	}{
		{name: "default message", want: "Invalid request body"},
		{name: "custom message", msgs: []string{"body must be json"}, want: "body must be json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidFormat(tt.msgs...)

			var gerr *Error
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, tt.want, gerr.Msg())
			assert.Equal(t, CodeInvalidFormat, gerr.Code())
		})
	}
}
