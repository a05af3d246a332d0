package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", New(KindValidation, "bad"), http.StatusBadRequest},
		{"duplicate", New(KindDuplicate, "dup"), http.StatusConflict},
		{"authentication", New(KindAuthentication, "who"), http.StatusUnauthorized},
		{"invalid token", New(KindInvalidToken, "tok"), http.StatusForbidden},
		{"forbidden", New(KindForbidden, "no"), http.StatusForbidden},
		{"not found", New(KindNotFound, "gone"), http.StatusNotFound},
		{"internal", New(KindInternal, "boom"), http.StatusInternalServerError},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", New(KindNotFound, "gone")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Post not found", Message(New(KindNotFound, "Post not found")))
	assert.Equal(t, InternalMessage, Message(errors.New("sql: connection refused")))
	assert.Equal(t, InternalMessage, Message(Wrap(KindInternal, "store failed", errors.New("driver"))))
}

func TestSentinelIdentity(t *testing.T) {
	sentinel := New(KindAuthentication, "User not found")
	wrapped := fmt.Errorf("login: %w", sentinel)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.Equal(t, KindAuthentication, KindOf(wrapped))
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(KindDuplicate, "Username or email already exists", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Username or email already exists: duplicate key", err.Error())
	assert.Equal(t, "duplicate", err.Kind.String())
}
