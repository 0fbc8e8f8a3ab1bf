package repository

import (
	"context"

	"github.com/kert-club/community-api/internal/domain/entity"
)

// PostRepository defines post-related database operations.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context) ([]entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id int64) error
}
