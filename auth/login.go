package auth

import (
	"time"
	"whisperwall/errors"
)

const AdminRole = "admin"

// AdminLogin trades the operator password for a short-lived admin token.
// Without a configured hash every attempt is refused.
type AdminLogin struct {
	tokens       *TokenManager
	passwordHash string
	ttl          time.Duration
}

func NewAdminLogin(tokens *TokenManager, passwordHash string, ttl time.Duration) *AdminLogin {
	return &AdminLogin{tokens: tokens, passwordHash: passwordHash, ttl: ttl}
}

func (l *AdminLogin) Enabled() bool {
	return l != nil && l.passwordHash != "" && l.tokens.Enabled()
}

func (l *AdminLogin) Login(password string) (string, error) {
	if !l.Enabled() {
		return "", errors.ErrAuthDisabled
	}
	ok, err := ComparePassword(password, l.passwordHash)
	if err != nil || !ok {
		return "", errors.ErrInvalidCredentials
	}
	return l.tokens.GenerateToken("admin", []string{AdminRole}, l.ttl)
}
