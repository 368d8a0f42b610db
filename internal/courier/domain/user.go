package domain

import "time"

// User is the full directory record. PasswordHash never leaves the service
// layer; outward projections use Profile or Summary.
type User struct {
	Username     string
	PasswordHash string // argon2id PHC encoded
	FirstName    string
	LastName     string
	Phone        string
	JoinAt       time.Time
	LastLoginAt  *time.Time // nil until the first successful login
}

// Profile is the counterparty view attached to ledger entries.
type Profile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Summary is the roster listing shape.
type Summary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
