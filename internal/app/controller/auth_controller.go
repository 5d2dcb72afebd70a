package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/creme-backend/internal/app/service"
	apperrors "github.com/ikkim/creme-backend/internal/errors"
	"github.com/ikkim/creme-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login opens an admin session
// POST /api/v1/admin/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "login")
		return
	}

	sess, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername):
			apperrors.Unauthorized(c, apperrors.AuthInvalidUsername, "Invalid username")
		case errors.Is(err, service.ErrInvalidPassword):
			apperrors.Unauthorized(c, apperrors.AuthInvalidPassword, "Invalid password")
		default:
			log.Error("Admin login failed", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Login successful",
		"token":      sess.Token,
		"session_id": sess.SessionID,
	})
}

// Logout clears the admin session flag
// POST /api/v1/admin/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	sid, _ := middleware.GetSessionID(c)

	if err := ctrl.authService.Logout(c.Request.Context(), sid); err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// Session reports whether the caller's admin session is active. It only runs
// behind RequireAdmin, so reaching it means the session is active.
// GET /api/v1/admin/session
func (ctrl *AuthController) Session(c *gin.Context) {
	sid, _ := middleware.GetSessionID(c)
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"session_id":    sid,
	})
}
