package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Nobzo/internal/auth"
)

func okHandler(captured *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret")
	m := NewAuthMiddleware(tokens)

	userID := uuid.New()
	token, err := tokens.Issue(userID)
	require.NoError(t, err)

	var got uuid.UUID
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	m.RequireAuth(okHandler(&got)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, got)
}

func TestRequireAuth_Failures(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret")
	m := NewAuthMiddleware(tokens)

	otherToken, err := auth.NewTokenIssuer("other-secret").Issue(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong signature", "Bearer " + otherToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			var got uuid.UUID
			m.RequireAuth(okHandler(&got)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, uuid.Nil, got)
			assert.Contains(t, rec.Body.String(), "Unauthenticated")
		})
	}
}

func TestOptionalAuth_NoToken(t *testing.T) {
	m := NewAuthMiddleware(auth.NewTokenIssuer("test-secret"))

	var got uuid.UUID
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()

	m.OptionalAuth(okHandler(&got)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uuid.Nil, got)
}

func TestOptionalAuth_InvalidTokenIsAnonymous(t *testing.T) {
	m := NewAuthMiddleware(auth.NewTokenIssuer("test-secret"))

	var got uuid.UUID
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer expired-or-garbage")
	rec := httptest.NewRecorder()

	m.OptionalAuth(okHandler(&got)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uuid.Nil, got)
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret")
	m := NewAuthMiddleware(tokens)

	userID := uuid.New()
	token, err := tokens.Issue(userID)
	require.NoError(t, err)

	var got uuid.UUID
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	m.OptionalAuth(okHandler(&got)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, got)
}
