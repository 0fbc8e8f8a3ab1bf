package entity

import "time"

// Credential holds the bcrypt hash for a user, stored apart from the profile
// record. At most one credential exists per user and it is never exposed
// through the API.
type Credential struct {
	UserID       int64
	PasswordHash string
	CreatedAt    time.Time
}
