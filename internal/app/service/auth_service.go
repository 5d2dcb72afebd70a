package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ikkim/creme-backend/internal/session"
	"github.com/ikkim/creme-backend/pkg/logger"
	"github.com/ikkim/creme-backend/pkg/util"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
	ErrSessionInactive = errors.New("admin session is not active")
)

// AdminSession is returned on a successful login.
type AdminSession struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// AuthService gates the admin API behind the single shared admin password.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*AdminSession, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, token string) (*util.AdminClaims, error)
}

type authService struct {
	username     string
	passwordHash string
	secret       string
	sessions     session.Store
}

// NewAuthService takes the bcrypt hash of the admin password, never the
// plain text.
func NewAuthService(username, passwordHash, secret string, sessions session.Store) AuthService {
	return &authService{
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		sessions:     sessions,
	}
}

// Login checks the username first; the password is only compared when the
// username matches.
func (s *authService) Login(ctx context.Context, username, password string) (*AdminSession, error) {
	if username != s.username {
		logger.Warn("Admin login failed: invalid username", map[string]interface{}{
			"username": username,
		})
		return nil, ErrInvalidUsername
	}

	if !util.VerifyPassword(s.passwordHash, password) {
		logger.Warn("Admin login failed: invalid password", nil)
		return nil, ErrInvalidPassword
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Activate(ctx, sessionID); err != nil {
		logger.Error("Failed to store admin session", err, nil)
		return nil, err
	}

	token, err := util.GenerateAdminToken(sessionID, s.secret)
	if err != nil {
		logger.Error("Failed to sign admin token", err, nil)
		_ = s.sessions.Clear(ctx, sessionID)
		return nil, err
	}

	logger.Info("Admin logged in", map[string]interface{}{
		"session_id": sessionID,
	})
	return &AdminSession{SessionID: sessionID, Token: token}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		logger.Error("Failed to clear admin session", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return err
	}

	logger.Info("Admin logged out", map[string]interface{}{
		"session_id": sessionID,
	})
	return nil
}

// Authenticate accepts a token only while its session flag is still set.
func (s *authService) Authenticate(ctx context.Context, token string) (*util.AdminClaims, error) {
	claims, err := util.ValidateAdminToken(token, s.secret)
	if err != nil {
		return nil, err
	}

	active, err := s.sessions.IsActive(ctx, claims.SessionID)
	if err != nil {
		logger.Error("Failed to read admin session", err, map[string]interface{}{
			"session_id": claims.SessionID,
		})
		return nil, err
	}
	if !active {
		return nil, ErrSessionInactive
	}
	return claims, nil
}
