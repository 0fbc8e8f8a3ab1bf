package entity

import "time"

// Role represents an authorization role.
// Many-to-many with User via user_roles.
type Role struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoleAdmin gates every mutating endpoint on histories, posts and users.
const RoleAdmin = "admin"
