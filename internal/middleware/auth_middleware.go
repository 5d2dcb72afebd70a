package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/creme-backend/internal/app/service"
	apperrors "github.com/ikkim/creme-backend/internal/errors"
	"github.com/ikkim/creme-backend/pkg/util"
)

// SessionIDKey is the context key holding the authenticated admin session id.
const SessionIDKey = "admin_session_id"

type AuthMiddleware struct {
	authService service.AuthService
}

func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// RequireAdmin rejects requests without a token whose admin session is still
// active.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		token, ok := bearerToken(c)
		if !ok {
			log.Warn("Missing or malformed authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			apperrors.Unauthorized(c, apperrors.AuthUnauthorized, "Login required")
			return
		}

		claims, err := m.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.Warn("Admin authentication failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})

			switch {
			case errors.Is(err, util.ErrInvalidToken):
				apperrors.Unauthorized(c, apperrors.AuthTokenInvalid, "Invalid session token")
			case errors.Is(err, service.ErrSessionInactive):
				apperrors.Unauthorized(c, apperrors.AuthSessionInactive, "Session has ended. Please log in again")
			default:
				apperrors.InternalError(c, "")
			}
			return
		}

		c.Set(SessionIDKey, claims.SessionID)
		log.Debug("Admin authenticated", map[string]interface{}{
			"session_id": claims.SessionID,
		})

		c.Next()
	}
}

// bearerToken reads "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetSessionID extracts the admin session id from context.
func GetSessionID(c *gin.Context) (string, bool) {
	sid, exists := c.Get(SessionIDKey)
	if !exists {
		return "", false
	}
	return sid.(string), true
}
