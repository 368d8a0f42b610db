package store

import (
	"context"
	"errors"
	"time"

	"github.com/tabwire/courier/internal/courier/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Messages() Messages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to do multi-step atomic operations.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user. Returns ErrAlreadyExists when the
	// username is taken; concurrent registrations race on the primary key
	// and the loser gets the same error.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByUsername returns the full record including the password hash.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UserExists reports whether a username is registered.
	UserExists(ctx context.Context, username string) (bool, error)

	// ListUsers returns the roster ordered by username.
	ListUsers(ctx context.Context) ([]domain.Summary, error)

	// TouchLastLogin sets last_login_at. Returns ErrNotFound if the user
	// vanished; callers treat that as non-fatal.
	TouchLastLogin(ctx context.Context, username string, at time.Time) error
}

type Messages interface {
	// CreateMessage inserts a message and returns the store-assigned id.
	// Both endpoints must reference existing users.
	CreateMessage(ctx context.Context, m domain.Message) (int64, error)

	// GetMessageByID returns one message with both endpoint profiles.
	GetMessageByID(ctx context.Context, id int64) (domain.MessageDetail, error)

	// ListMessagesFrom returns every message sent by username annotated with
	// the recipient profile, ordered by sent_at then id ascending.
	ListMessagesFrom(ctx context.Context, username string) ([]domain.LedgerEntry, error)

	// ListMessagesTo is the symmetric query annotated with the sender profile.
	ListMessagesTo(ctx context.Context, username string) ([]domain.LedgerEntry, error)

	// MarkMessageRead sets read_at if it is currently null. A second call is
	// a no-op; an unknown id returns ErrNotFound.
	MarkMessageRead(ctx context.Context, id int64, at time.Time) error
}
