package domain

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	Admin UserRole = "admin"
	Staff UserRole = "staff"
)

type TokenPayload struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	UserID    uuid.UUID
	Role      UserRole
}
