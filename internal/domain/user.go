package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account that can host and join rooms.
// PasswordHash holds the bcrypt hash of the credential, never plaintext.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	MobileToken  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(username string, passwordHash string, mobileToken string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		MobileToken:  mobileToken,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
