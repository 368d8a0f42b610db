package service

import (
	"errors"
	"time"

	"github.com/tabwire/courier/pkg/jwtx"
)

var ErrInvalidToken = errors.New("invalid_token")

// TokenService issues and verifies the bearer tokens handed out on login and
// registration.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
}

// Issue signs a bearer token for the given username.
func (s *TokenService) Issue(username string) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewClaims(username, s.Issuer, ttl, time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Verify validates a bearer token and returns the subject username. Every
// verification failure collapses to ErrInvalidToken.
func (s *TokenService) Verify(token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
