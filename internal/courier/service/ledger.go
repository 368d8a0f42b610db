package service

import (
	"context"
	"strings"
	"time"

	"github.com/tabwire/courier/internal/courier/domain"
	"github.com/tabwire/courier/internal/courier/store"
)

// LedgerService owns the message ledger: sending, fetching and the per-user
// inbox/outbox listings.
type LedgerService struct {
	Store store.Store
}

// Send records a message from one user to another and returns it with both
// participant profiles attached. Unknown senders or recipients return
// store.ErrNotFound; an empty body returns ErrValidation.
func (s *LedgerService) Send(ctx context.Context, from, to, body string) (domain.MessageDetail, error) {
	if strings.TrimSpace(body) == "" {
		return domain.MessageDetail{}, ErrValidation
	}

	var result domain.MessageDetail

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// The FK on from_username/to_username would catch these anyway, but
		// checking explicitly distinguishes which side is missing in logs.
		for _, username := range []string{from, to} {
			ok, err := tx.Users().UserExists(ctx, username)
			if err != nil {
				return err
			}
			if !ok {
				return store.ErrNotFound
			}
		}

		id, err := tx.Messages().CreateMessage(ctx, domain.Message{
			FromUsername: from,
			ToUsername:   to,
			Body:         body,
			SentAt:       time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		result, err = tx.Messages().GetMessageByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.MessageDetail{}, err
	}

	return result, nil
}

// Get fetches a single message with both participant profiles.
func (s *LedgerService) Get(ctx context.Context, id int64) (domain.MessageDetail, error) {
	return s.Store.Messages().GetMessageByID(ctx, id)
}

// MessagesFrom returns every message the user has sent, oldest first, each
// annotated with the recipient's profile. An unknown user returns
// store.ErrNotFound; a known user with no sent messages returns an empty
// slice.
func (s *LedgerService) MessagesFrom(ctx context.Context, username string) ([]domain.LedgerEntry, error) {
	if err := s.requireUser(ctx, username); err != nil {
		return nil, err
	}
	return s.Store.Messages().ListMessagesFrom(ctx, username)
}

// MessagesTo is the inbox counterpart of MessagesFrom: every message the
// user has received, oldest first, annotated with the sender's profile.
func (s *LedgerService) MessagesTo(ctx context.Context, username string) ([]domain.LedgerEntry, error) {
	if err := s.requireUser(ctx, username); err != nil {
		return nil, err
	}
	return s.Store.Messages().ListMessagesTo(ctx, username)
}

// MarkRead stamps a message's read time and returns the updated message.
// Marking an already-read message keeps the original timestamp.
func (s *LedgerService) MarkRead(ctx context.Context, id int64) (domain.MessageDetail, error) {
	if err := s.Store.Messages().MarkMessageRead(ctx, id, time.Now().UTC()); err != nil {
		return domain.MessageDetail{}, err
	}
	return s.Store.Messages().GetMessageByID(ctx, id)
}

func (s *LedgerService) requireUser(ctx context.Context, username string) error {
	ok, err := s.Store.Users().UserExists(ctx, username)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}
	return nil
}
