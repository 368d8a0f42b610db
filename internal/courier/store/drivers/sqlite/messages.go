package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tabwire/courier/internal/courier/domain"
	"github.com/tabwire/courier/internal/courier/store"
)

type messagesRepo struct {
	db dbtx
}

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.Message) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (from_username, to_username, body, sent_at, read_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.FromUsername,
		m.ToUsername,
		m.Body,
		m.SentAt.UTC(),
		mapOptionalTime(m.ReadAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *messagesRepo) GetMessageByID(ctx context.Context, id int64) (domain.MessageDetail, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT m.id, m.from_username, m.to_username, m.body, m.sent_at, m.read_at,
		       f.first_name, f.last_name, f.phone,
		       t.first_name, t.last_name, t.phone
		FROM messages AS m
		JOIN users AS f ON m.from_username = f.username
		JOIN users AS t ON m.to_username = t.username
		WHERE m.id = ?`,
		id,
	)

	var d domain.MessageDetail
	var readAt sql.NullTime
	err := row.Scan(
		&d.ID, &d.FromUsername, &d.ToUsername, &d.Body, &d.SentAt, &readAt,
		&d.From.FirstName, &d.From.LastName, &d.From.Phone,
		&d.To.FirstName, &d.To.LastName, &d.To.Phone,
	)
	if err != nil {
		return domain.MessageDetail{}, mapNotFound(err)
	}

	d.SentAt = d.SentAt.UTC()
	d.ReadAt = mapNullTimePtr(readAt)
	d.From.Username = d.FromUsername
	d.To.Username = d.ToUsername
	return d, nil
}

func (r *messagesRepo) ListMessagesFrom(ctx context.Context, username string) ([]domain.LedgerEntry, error) {
	return r.listAnnotated(ctx, `
		SELECT m.id, m.from_username, m.to_username, m.body, m.sent_at, m.read_at,
		       u.username, u.first_name, u.last_name, u.phone
		FROM messages AS m
		JOIN users AS u ON m.to_username = u.username
		WHERE m.from_username = ?
		ORDER BY m.sent_at ASC, m.id ASC`,
		username,
	)
}

func (r *messagesRepo) ListMessagesTo(ctx context.Context, username string) ([]domain.LedgerEntry, error) {
	return r.listAnnotated(ctx, `
		SELECT m.id, m.from_username, m.to_username, m.body, m.sent_at, m.read_at,
		       u.username, u.first_name, u.last_name, u.phone
		FROM messages AS m
		JOIN users AS u ON m.from_username = u.username
		WHERE m.to_username = ?
		ORDER BY m.sent_at ASC, m.id ASC`,
		username,
	)
}

func (r *messagesRepo) listAnnotated(ctx context.Context, query, username string) ([]domain.LedgerEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		var readAt sql.NullTime
		err := rows.Scan(
			&e.ID, &e.FromUsername, &e.ToUsername, &e.Body, &e.SentAt, &readAt,
			&e.Counterparty.Username,
			&e.Counterparty.FirstName,
			&e.Counterparty.LastName,
			&e.Counterparty.Phone,
		)
		if err != nil {
			return nil, err
		}
		e.SentAt = e.SentAt.UTC()
		e.ReadAt = mapNullTimePtr(readAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *messagesRepo) MarkMessageRead(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE messages SET read_at = ? WHERE id = ? AND read_at IS NULL`,
		at.UTC(), id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	// Nothing updated: either the message is already read (idempotent no-op)
	// or the id does not exist.
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE id = ?`, id)
	var count int64
	if err := row.Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return store.ErrNotFound
	}
	return nil
}
