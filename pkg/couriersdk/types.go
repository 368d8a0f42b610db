package couriersdk

import "time"

// RegisterRequest is the payload for POST /register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer token issued on login or registration.
type TokenResponse struct {
	Token string `json:"token"`
}

// Profile is the public slice of a user record embedded in message responses.
type Profile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

// UserSummary is the roster entry shape returned by GET /v1/users.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserResponse is the full user record returned by GET /v1/users/{username}.
type UserResponse struct {
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone,omitempty"`
	JoinAt      time.Time  `json:"join_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// SendMessageRequest is the payload for POST /v1/messages.
type SendMessageRequest struct {
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
}

// MessageResponse is a message with its participant profiles. List endpoints
// only populate the counterparty side: FromUser on inbox entries, ToUser on
// outbox entries.
type MessageResponse struct {
	ID       int64      `json:"id"`
	Body     string     `json:"body"`
	SentAt   time.Time  `json:"sent_at"`
	ReadAt   *time.Time `json:"read_at,omitempty"`
	FromUser *Profile   `json:"from_user,omitempty"`
	ToUser   *Profile   `json:"to_user,omitempty"`
}

// MessagesResponse wraps a user's inbox or outbox listing.
type MessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// UsersResponse wraps the roster listing.
type UsersResponse struct {
	Users []UserSummary `json:"users"`
}

// HealthChecks reports the state of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
