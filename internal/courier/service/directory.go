package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tabwire/courier/internal/courier/domain"
	"github.com/tabwire/courier/internal/courier/store"
	"github.com/tabwire/courier/pkg/cryptox"
	"github.com/tabwire/courier/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrValidation         = errors.New("validation")
)

// DirectoryService owns the user directory: registration, credential checks
// and profile lookups.
type DirectoryService struct {
	Store store.Store
}

// Register creates a new user with a freshly hashed password and returns the
// stored record. The username must be unique; a clash returns
// ErrUsernameTaken and leaves the existing account untouched.
func (s *DirectoryService) Register(
	ctx context.Context,
	username, password, firstName, lastName, phone string,
) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrValidation
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrEmptyPassword) {
			return domain.User{}, ErrValidation
		}
		return domain.User{}, err
	}

	u := domain.User{
		Username:     username,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Phone:        strings.TrimSpace(phone),
		JoinAt:       time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	return u, nil
}

// Authenticate verifies a username and password pair and stamps the user's
// last login time on success. Unknown usernames and wrong passwords both
// come back as ErrInvalidCredentials so callers cannot probe for accounts.
func (s *DirectoryService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Debug("login for unknown username", "username", username)
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrHashFormat) {
			// Stored digest is corrupt. This is our fault, not the caller's.
			l.Error("stored password hash is malformed", "username", username)
			return domain.User{}, err
		}
		l.Debug("password verification failed", "username", username)
		return domain.User{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.Store.Users().TouchLastLogin(ctx, username, now); err != nil {
		// Login still succeeds; the timestamp is best effort.
		l.Warn("failed to update last login", "username", username, "err", err)
	} else {
		u.LastLoginAt = &now
	}

	return u, nil
}

// Roster lists every registered user ordered by username.
func (s *DirectoryService) Roster(ctx context.Context) ([]domain.Summary, error) {
	return s.Store.Users().ListUsers(ctx)
}

// Get fetches a single user by username.
func (s *DirectoryService) Get(ctx context.Context, username string) (domain.User, error) {
	return s.Store.Users().GetUserByUsername(ctx, username)
}
