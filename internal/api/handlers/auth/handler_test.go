package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Nobzo/internal/core/users"
)

// MockUserService is a mock implementation of users.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req users.RegisterRequest) (*users.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.AuthResponse), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req users.LoginRequest) (*users.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.AuthResponse), args.Error(1)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleRegister_Success(t *testing.T) {
	svc := new(MockUserService)
	h := NewHandler(svc)

	svc.On("Register", mock.Anything, users.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	}).Return(&users.AuthResponse{
		Token: "signed-token",
		User:  users.PublicUser{ID: uuid.New(), Name: "John Doe", Email: "john@example.com"},
	}, nil)

	rec := postJSON(t, h.HandleRegister, "/api/auth/register",
		`{"name":"John Doe","email":"john@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp users.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "john@example.com", resp.User.Email)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestHandleRegister_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"john@example.com","password":"password123"}`},
		{"bad email", `{"name":"John","email":"not-an-email","password":"password123"}`},
		{"short password", `{"name":"John","email":"john@example.com","password":"abc"}`},
		{"malformed json", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			h := NewHandler(svc)

			rec := postJSON(t, h.HandleRegister, "/api/auth/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "Register")
		})
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	svc := new(MockUserService)
	h := NewHandler(svc)

	svc.On("Register", mock.Anything, mock.Anything).Return(nil, users.ErrEmailTaken)

	rec := postJSON(t, h.HandleRegister, "/api/auth/register",
		`{"name":"John Doe","email":"john@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already in use")
}

func TestHandleLogin_Success(t *testing.T) {
	svc := new(MockUserService)
	h := NewHandler(svc)

	svc.On("Login", mock.Anything, users.LoginRequest{
		Email:    "john@example.com",
		Password: "password123",
	}).Return(&users.AuthResponse{
		Token: "signed-token",
		User:  users.PublicUser{Email: "john@example.com"},
	}, nil)

	rec := postJSON(t, h.HandleLogin, "/api/auth/login",
		`{"email":"john@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	svc := new(MockUserService)
	h := NewHandler(svc)

	svc.On("Login", mock.Anything, mock.Anything).Return(nil, users.ErrInvalidCredentials)

	// Wrong password and unknown email produce the identical response
	for _, body := range []string{
		`{"email":"john@example.com","password":"wrong-password"}`,
		`{"email":"unknown@example.com","password":"password123"}`,
	} {
		rec := postJSON(t, h.HandleLogin, "/api/auth/login", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	}
}
