package entity

import (
	"time"
)

// User is the aggregate root for the member domain.
// StudentID is externally assigned (university student number) and immutable
// once created. Password material lives in Credential, never here.
type User struct {
	StudentID      int64
	Email          string
	Name           string
	ProfilePicture string
	Generation     int
	Major          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
