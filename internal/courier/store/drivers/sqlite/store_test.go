package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tabwire/courier/internal/courier/domain"
	"github.com/tabwire/courier/internal/courier/store"
	"github.com/tabwire/courier/internal/courier/store/drivers/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "courier.db") + "?_pragma=busy_timeout(5000)"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()

	u := domain.User{
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g",
		FirstName:    "Test",
		LastName:     "User",
		JoinAt:       time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestPing(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Ping(context.Background()))
}

func TestUsersRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seed := seedUser(t, st, "alice")

	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, seed.Username, got.Username)
	require.Equal(t, seed.PasswordHash, got.PasswordHash)
	require.Equal(t, seed.FirstName, got.FirstName)
	require.WithinDuration(t, seed.JoinAt, got.JoinAt, time.Second)
	require.Nil(t, got.LastLoginAt)
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Users().GetUserByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUserDuplicate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "alice")

	dup := u
	dup.FirstName = "Impostor"
	err := st.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Original record is untouched
	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "Test", got.FirstName)
}

func TestUserExists(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedUser(t, st, "alice")

	ok, err := st.Users().UserExists(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.Users().UserExists(ctx, "ghost")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestListUsersOrdered(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"charlie", "alice", "bob"} {
		seedUser(t, st, name)
	}

	users, err := st.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "alice", users[0].Username)
	require.Equal(t, "bob", users[1].Username)
	require.Equal(t, "charlie", users[2].Username)
}

func TestTouchLastLogin(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedUser(t, st, "alice")

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, st.Users().TouchLastLogin(ctx, "alice", at))

	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	require.WithinDuration(t, at, *got.LastLoginAt, time.Second)

	err = st.Users().TouchLastLogin(ctx, "ghost", at)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMessagesRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedUser(t, st, "alice")
	seedUser(t, st, "bob")

	sentAt := time.Now().UTC().Truncate(time.Second)
	id, err := st.Messages().CreateMessage(ctx, domain.Message{
		FromUsername: "alice",
		ToUsername:   "bob",
		Body:         "hello bob",
		SentAt:       sentAt,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := st.Messages().GetMessageByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice", got.FromUsername)
	require.Equal(t, "bob", got.ToUsername)
	require.Equal(t, "hello bob", got.Body)
	require.WithinDuration(t, sentAt, got.SentAt, time.Second)
	require.Nil(t, got.ReadAt)
	require.Equal(t, "alice", got.From.Username)
	require.Equal(t, "bob", got.To.Username)
	require.Equal(t, "Test", got.From.FirstName)
}

func TestCreateMessageUnknownUser(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedUser(t, st, "alice")

	_, err := st.Messages().CreateMessage(ctx, domain.Message{
		FromUsername: "alice",
		ToUsername:   "ghost",
		Body:         "anyone there?",
		SentAt:       time.Now().UTC(),
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestForeignKeysEnforcedAcrossConnections(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Hold an open transaction so the insert below is forced onto a second
	// pooled connection; FK enforcement must hold there too.
	tx, err := st.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	_, err = st.Messages().CreateMessage(ctx, domain.Message{
		FromUsername: "ghost",
		ToUsername:   "phantom",
		Body:         "should never land",
		SentAt:       time.Now().UTC(),
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetMessageByIDNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Messages().GetMessageByID(context.Background(), 9999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListMessagesOrderingAndAnnotation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedUser(t, st, "alice")
	seedUser(t, st, "bob")
	seedUser(t, st, "carol")

	base := time.Now().UTC().Truncate(time.Second)
	bodies := []struct {
		to   string
		body string
		at   time.Time
	}{
		{"bob", "second", base.Add(2 * time.Second)},
		{"carol", "first", base.Add(1 * time.Second)},
		{"bob", "third", base.Add(3 * time.Second)},
	}
	for _, m := range bodies {
		_, err := st.Messages().CreateMessage(ctx, domain.Message{
			FromUsername: "alice",
			ToUsername:   m.to,
			Body:         m.body,
			SentAt:       m.at,
		})
		require.NoError(t, err)
	}

	t.Run("outbox oldest first with recipient profile", func(t *testing.T) {
		out, err := st.Messages().ListMessagesFrom(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, out, 3)
		require.Equal(t, "first", out[0].Body)
		require.Equal(t, "second", out[1].Body)
		require.Equal(t, "third", out[2].Body)
		require.Equal(t, "carol", out[0].Counterparty.Username)
		require.Equal(t, "bob", out[1].Counterparty.Username)
	})

	t.Run("inbox only shows own messages", func(t *testing.T) {
		in, err := st.Messages().ListMessagesTo(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, in, 2)
		require.Equal(t, "second", in[0].Body)
		require.Equal(t, "third", in[1].Body)
		require.Equal(t, "alice", in[0].Counterparty.Username)
	})

	t.Run("no messages yields empty slice", func(t *testing.T) {
		in, err := st.Messages().ListMessagesTo(ctx, "alice")
		require.NoError(t, err)
		require.Empty(t, in)
	})
}

func TestTiedSentAtOrderedByID(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedUser(t, st, "alice")
	seedUser(t, st, "bob")

	at := time.Now().UTC().Truncate(time.Second)
	var ids []int64
	for _, body := range []string{"one", "two", "three"} {
		id, err := st.Messages().CreateMessage(ctx, domain.Message{
			FromUsername: "alice",
			ToUsername:   "bob",
			Body:         body,
			SentAt:       at,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	in, err := st.Messages().ListMessagesTo(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, in, 3)
	for i, e := range in {
		require.Equal(t, ids[i], e.ID, "equal sent_at must fall back to id order")
	}
}

func TestMarkMessageRead(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedUser(t, st, "alice")
	seedUser(t, st, "bob")

	id, err := st.Messages().CreateMessage(ctx, domain.Message{
		FromUsername: "alice",
		ToUsername:   "bob",
		Body:         "read me",
		SentAt:       time.Now().UTC(),
	})
	require.NoError(t, err)

	first := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, st.Messages().MarkMessageRead(ctx, id, first))

	got, err := st.Messages().GetMessageByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.ReadAt)
	require.WithinDuration(t, first, *got.ReadAt, time.Second)

	// Second mark keeps the original timestamp
	require.NoError(t, st.Messages().MarkMessageRead(ctx, id, first.Add(time.Hour)))
	again, err := st.Messages().GetMessageByID(ctx, id)
	require.NoError(t, err)
	require.WithinDuration(t, first, *again.ReadAt, time.Second)

	// Unknown id is an error, not a silent no-op
	err = st.Messages().MarkMessageRead(ctx, 9999, first)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommitAndRollback(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, domain.User{
				Username:     "alice",
				PasswordHash: "x",
				JoinAt:       time.Now().UTC(),
			})
		})
		require.NoError(t, err)

		ok, err := st.Users().UserExists(ctx, "alice")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("rollback on error", func(t *testing.T) {
		sentinel := store.ErrNotFound
		err := st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().CreateUser(ctx, domain.User{
				Username:     "bob",
				PasswordHash: "x",
				JoinAt:       time.Now().UTC(),
			}); err != nil {
				return err
			}
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)

		ok, err := st.Users().UserExists(ctx, "bob")
		require.NoError(t, err)
		require.False(t, ok, "rolled back insert must not be visible")
	})
}
