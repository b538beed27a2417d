package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/application/auth/usecases"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type mockRegisterUC struct {
	result  *usecases.RegisterResult
	err     error
	lastCmd usecases.RegisterCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

type mockLogoutUC struct {
	err error
}

func (m *mockLogoutUC) Execute(ctx context.Context, cmd usecases.LogoutCommand) error {
	return m.err
}

type noopLogger struct{}

func (noopLogger) Debugw(msg string, keysAndValues ...any) {}
func (noopLogger) Infow(msg string, keysAndValues ...any)  {}
func (noopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (noopLogger) Errorw(msg string, keysAndValues ...any) {}
func (n noopLogger) With(args ...any) logger.Interface     { return n }
func (n noopLogger) Named(name string) logger.Interface    { return n }

func performJSON(t *testing.T, handler gin.HandlerFunc, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	registerUC := &mockRegisterUC{
		result: &usecases.RegisterResult{UserID: 4, Name: "Jane Doe", Email: "jane@example.com", Role: "user"},
	}
	handler := NewAuthHandler(registerUC, &mockLoginUC{}, &mockLogoutUC{}, noopLogger{})

	w := performJSON(t, handler.Register, "POST", "/api/auth/register", gin.H{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Account created successfully! Please log in.", resp.Message)
	// An omitted role defaults to plain user.
	assert.Equal(t, "user", registerUC.lastCmd.Role)
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	handler := NewAuthHandler(&mockRegisterUC{}, &mockLoginUC{}, &mockLogoutUC{}, noopLogger{})

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "missing password", body: gin.H{"name": "A", "email": "a@b.c"}},
		{name: "malformed email", body: gin.H{"name": "A", "email": "nope", "password": "p"}},
		{name: "unknown role", body: gin.H{"name": "A", "email": "a@b.c", "password": "p", "role": "root"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(t, handler.Register, "POST", "/api/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	registerUC := &mockRegisterUC{err: user.ErrDuplicateEmail()}
	handler := NewAuthHandler(registerUC, &mockLoginUC{}, &mockLogoutUC{}, noopLogger{})

	w := performJSON(t, handler.Register, "POST", "/api/auth/register", gin.H{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, user.KindDuplicateEmail, resp.Error.Kind)
	assert.Equal(t, "Email already registered. Please login or use a different email.", resp.Error.Message)
}

func TestAuthHandler_Login(t *testing.T) {
	loginUC := &mockLoginUC{
		result: &usecases.LoginResult{Token: "jwt-token", UserID: 3, Name: "Jane Doe", Role: "user"},
	}
	handler := NewAuthHandler(&mockRegisterUC{}, loginUC, &mockLogoutUC{}, noopLogger{})

	w := performJSON(t, handler.Login, "POST", "/api/auth/login", gin.H{
		"email":    "jane@example.com",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Welcome back, Jane Doe!", resp.Message)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	loginUC := &mockLoginUC{err: user.ErrInvalidCredentials()}
	handler := NewAuthHandler(&mockRegisterUC{}, loginUC, &mockLogoutUC{}, noopLogger{})

	w := performJSON(t, handler.Login, "POST", "/api/auth/login", gin.H{
		"email":    "jane@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Invalid email or password. Please try again.", resp.Error.Message)
}

func TestAuthHandler_Logout(t *testing.T) {
	handler := NewAuthHandler(&mockRegisterUC{}, &mockLoginUC{}, &mockLogoutUC{}, noopLogger{})

	w := performJSON(t, handler.Logout, "POST", "/api/auth/logout", gin.H{})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Logged out successfully", resp.Message)
}
