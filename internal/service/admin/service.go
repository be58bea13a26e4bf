// Package admin gates the back-office endpoints with short-lived bearer
// tokens. Credentials come from configuration; this is deliberately not a
// full auth system.
package admin

import (
	"crypto/subtle"
	"errors"
	"time"
)

const tokenTTL = 12 * time.Hour

var ErrBadCredentials = errors.New("invalid email or password")

type Service struct {
	email    string
	password string
	tokens   *tokenManager
}

func New(email, password string) *Service {
	return &Service{
		email:    email,
		password: password,
		tokens:   newTokenManager(),
	}
}

// Login checks the configured credentials and issues a bearer token. An empty
// configured password disables admin login entirely.
func (s *Service) Login(email, password string) (string, error) {
	if s.password == "" {
		return "", ErrBadCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !emailOK || !passOK {
		return "", ErrBadCredentials
	}
	return s.tokens.Issue(tokenTTL)
}

// Authorize reports whether the bearer token is valid and unexpired.
func (s *Service) Authorize(token string) bool {
	return s.tokens.Validate(token)
}
