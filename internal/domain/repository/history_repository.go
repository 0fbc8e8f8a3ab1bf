package repository

import (
	"context"

	"github.com/kert-club/community-api/internal/domain/entity"
)

// HistoryRepository defines history-related database operations.
type HistoryRepository interface {
	Create(ctx context.Context, h *entity.History) error
	GetByID(ctx context.Context, id int64) (*entity.History, error)
	List(ctx context.Context) ([]entity.History, error)
	Update(ctx context.Context, h *entity.History) error
	Delete(ctx context.Context, id int64) error
}
