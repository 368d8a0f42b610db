package domain

import "time"

// Message is a directed text message between two users. The id is assigned by
// the store and increases monotonically. read_at is set at most once and is
// always >= sent_at.
type Message struct {
	ID           int64
	FromUsername string
	ToUsername   string
	Body         string
	SentAt       time.Time
	ReadAt       *time.Time
}

// LedgerEntry is a message annotated with the counterparty's profile: the
// recipient when listing messages from a user, the sender when listing
// messages to a user.
type LedgerEntry struct {
	Message
	Counterparty Profile
}

// MessageDetail is a single message with both endpoint profiles resolved.
type MessageDetail struct {
	Message
	From Profile
	To   Profile
}
