package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session holds everything the admin SPA used to keep in browser storage:
// the backend bearer token, the user identity and the login timestamp. It
// is cleared in full on logout or on an upstream 401.
type Session struct {
	SessionID    uuid.UUID `json:"session_id"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	Role         UserRole  `json:"role"`
	BackendToken string    `json:"backend_token"`
	LoggedInAt   time.Time `json:"logged_in_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserProfile struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   UserRole  `json:"role"`
}
