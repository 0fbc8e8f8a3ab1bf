package entity

import "time"

// Post is a blog entry owned by a user via StudentID.
// Timestamps are server-assigned; UpdatedAt is refreshed on every mutation.
type Post struct {
	ID          int64
	Title       string
	Tag         string
	Description string
	Content     string
	StudentID   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
