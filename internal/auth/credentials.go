package auth

import (
	"crypto/subtle"
	"invoice-dashboard/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker validates a username and password against the single
// configured account.
type CredentialChecker struct {
	username     []byte
	password     []byte
	passwordHash []byte
}

func NewCredentialChecker(cfg config.AuthConfig) *CredentialChecker {
	c := &CredentialChecker{
		username: []byte(cfg.Username),
	}
	if cfg.PasswordHash != "" {
		c.passwordHash = []byte(cfg.PasswordHash)
	} else {
		c.password = []byte(cfg.Password)
	}
	return c
}

func (c *CredentialChecker) Check(username, password string) bool {
	if username == "" || password == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), c.username) == 1

	var passOK bool
	if c.passwordHash != nil {
		passOK = bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), c.password) == 1
	}

	return userOK && passOK
}
