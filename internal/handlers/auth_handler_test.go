package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	okResp := &models.LoginResponse{Username: "admin", AccessToken: "token-123", TokenType: "bearer"}

	tests := []struct {
		name           string
		buildRequest   func() *http.Request
		username       string
		password       string
		serviceErr     error
		expectedStatus int
	}{
		{
			name: "json body",
			buildRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"secret"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			username:       "admin",
			password:       "secret",
			expectedStatus: http.StatusOK,
		},
		{
			name: "form body",
			buildRequest: func() *http.Request {
				form := url.Values{"username": {"admin"}, "password": {"secret"}}
				req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			username:       "admin",
			password:       "secret",
			expectedStatus: http.StatusOK,
		},
		{
			name: "query string",
			buildRequest: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/auth/login?username=admin&password=secret", nil)
			},
			username:       "admin",
			password:       "secret",
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong credentials",
			buildRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"nope"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			username:       "admin",
			password:       "nope",
			serviceErr:     services.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockAuthService)
			if tt.serviceErr != nil {
				svc.On("Login", tt.username, tt.password).Return(nil, tt.serviceErr)
			} else {
				svc.On("Login", tt.username, tt.password).Return(okResp, nil)
			}

			r := newTestEngine()
			r.POST("/auth/login", NewAuthHandler(svc).Login)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, tt.buildRequest())

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.serviceErr != nil {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
				assert.Equal(t, tt.serviceErr.Error(), decodeError(t, w))
			} else {
				assert.Contains(t, w.Body.String(), `"access_token":"token-123"`)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestLoginInvalidJSON(t *testing.T) {
	svc := new(mockAuthService)
	r := newTestEngine()
	r.POST("/auth/login", NewAuthHandler(svc).Login)

	w := perform(r, http.MethodPost, "/auth/login", "invalid json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", decodeError(t, w))
	svc.AssertNotCalled(t, "Login")
}
