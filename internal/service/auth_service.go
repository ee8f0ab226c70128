package service

import (
	"crypto/subtle"

	"github.com/unalcansuu/kds-jolly/internal/config"
)

// AuthService validates dashboard login attempts
type AuthService interface {
	// Login checks the credential pair against the configured account and
	// returns ErrInvalidCredentials on mismatch
	Login(username, password string) error
}

type authService struct {
	username string
	password string
}

// NewAuthService creates a new AuthService backed by the configured
// dashboard account
func NewAuthService(cfg config.AuthConfig) AuthService {
	return &authService{
		username: cfg.Username,
		password: cfg.Password,
	}
}

func (s *authService) Login(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
