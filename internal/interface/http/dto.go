package handlers

import (
	"time"

	"github.com/kert-club/community-api/internal/domain/entity"
)

type userResponse struct {
	StudentID      int64     `json:"student_id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Generation     int       `json:"generation"`
	Major          string    `json:"major"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		StudentID:      u.StudentID,
		Email:          u.Email,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
		Generation:     u.Generation,
		Major:          u.Major,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

type postResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Tag         string    `json:"tag,omitempty"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	StudentID   int64     `json:"student_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toPostResponse(p *entity.Post) postResponse {
	return postResponse{
		ID:          p.ID,
		Title:       p.Title,
		Tag:         p.Tag,
		Description: p.Description,
		Content:     p.Content,
		StudentID:   p.StudentID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type historyResponse struct {
	ID        int64     `json:"id"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toHistoryResponse(h *entity.History) historyResponse {
	return historyResponse{
		ID:        h.ID,
		Year:      h.Year,
		Month:     h.Month,
		Content:   h.Content,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
