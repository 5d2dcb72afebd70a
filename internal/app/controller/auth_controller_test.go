package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/creme-backend/internal/app/service"
	"github.com/ikkim/creme-backend/internal/middleware"
	"github.com/ikkim/creme-backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSessionSecret = "test-session-secret"

func setupAuthControllerTest(t *testing.T) *gin.Engine {
	hash, err := bcrypt.GenerateFromPassword([]byte("392766"), bcrypt.MinCost)
	require.NoError(t, err)

	authService := service.NewAuthService("admin", string(hash), testSessionSecret, session.NewMemoryStore())
	ctrl := NewAuthController(authService)
	auth := middleware.NewAuthMiddleware(authService)

	router := newTestRouter()
	router.POST("/admin/login", ctrl.Login)
	admin := router.Group("/admin", auth.RequireAdmin())
	admin.POST("/logout", ctrl.Logout)
	admin.GET("/session", ctrl.Session)
	return router
}

func withBearer(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthController_Login(t *testing.T) {
	router := setupAuthControllerTest(t)

	tests := []struct {
		name     string
		body     gin.H
		code     int
		errCode  string
		errorMsg string
	}{
		{
			name:     "unknown username",
			body:     gin.H{"username": "root", "password": "392766"},
			code:     http.StatusUnauthorized,
			errCode:  "AUTH_INVALID_USERNAME",
			errorMsg: "Invalid username",
		},
		{
			name:     "wrong password",
			body:     gin.H{"username": "admin", "password": "123456"},
			code:     http.StatusUnauthorized,
			errCode:  "AUTH_INVALID_PASSWORD",
			errorMsg: "Invalid password",
		},
		{
			name:     "unknown username wins over wrong password",
			body:     gin.H{"username": "", "password": ""},
			code:     http.StatusUnauthorized,
			errCode:  "AUTH_INVALID_USERNAME",
			errorMsg: "Invalid username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(router, http.MethodPost, "/admin/login", tt.body)
			requireStatus(t, w, tt.code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.errCode, body["error"])
			assert.Equal(t, tt.errorMsg, body["message"])
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		w := performJSON(router, http.MethodPost, "/admin/login", "{")
		requireStatus(t, w, http.StatusBadRequest)
	})
}

func TestAuthController_SessionLifecycle(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := performJSON(router, http.MethodPost, "/admin/login", gin.H{"username": "admin", "password": "392766"})
	requireStatus(t, w, http.StatusOK)
	login := decodeBody(t, w)
	token := login["token"].(string)
	require.NotEmpty(t, token)

	w = withBearer(router, http.MethodGet, "/admin/session", token)
	requireStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, login["session_id"], body["session_id"])

	w = withBearer(router, http.MethodPost, "/admin/logout", token)
	requireStatus(t, w, http.StatusOK)

	w = withBearer(router, http.MethodGet, "/admin/session", token)
	requireStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, "AUTH_SESSION_INACTIVE", decodeBody(t, w)["error"])
}

func TestAuthController_RejectsMissingToken(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := performJSON(router, http.MethodGet, "/admin/session", nil)
	requireStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, "AUTH_UNAUTHORIZED", decodeBody(t, w)["error"])

	w = withBearer(router, http.MethodGet, "/admin/session", "not-a-jwt")
	requireStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, "AUTH_TOKEN_INVALID", decodeBody(t, w)["error"])
}
