package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unalcansuu/kds-jolly/internal/config"
)

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(config.AuthConfig{Username: "Cansu", Password: "123"})

	assert.NoError(t, svc.Login("Cansu", "123"))
	assert.ErrorIs(t, svc.Login("Cansu", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Login("cansu", "123"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Login("", ""), ErrInvalidCredentials)
}
