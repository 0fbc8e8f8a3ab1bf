package entity

import "time"

// History is a dated entry on the club timeline.
type History struct {
	ID        int64
	Year      int
	Month     int
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
