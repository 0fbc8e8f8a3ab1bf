package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/internal/domain/repository"
)

type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

func (r *HistoryRepository) Create(ctx context.Context, h *entity.History) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO histories (year, month, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, h.Year, h.Month, h.Content)
	return row.Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (r *HistoryRepository) GetByID(ctx context.Context, id int64) (*entity.History, error) {
	h := &entity.History{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, year, month, content, created_at, updated_at
		FROM histories
		WHERE id = $1
	`, id)
	if err := row.Scan(&h.ID, &h.Year, &h.Month, &h.Content, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *HistoryRepository) List(ctx context.Context) ([]entity.History, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, year, month, content, created_at, updated_at
		FROM histories
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := make([]entity.History, 0)
	for rows.Next() {
		var h entity.History
		if err := rows.Scan(&h.ID, &h.Year, &h.Month, &h.Content, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

func (r *HistoryRepository) Update(ctx context.Context, h *entity.History) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE histories
		SET year = $1, month = $2, content = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`, h.Year, h.Month, h.Content, h.ID)
	if err := row.Scan(&h.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *HistoryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM histories WHERE id = $1`, id)
	return err
}

var _ repository.HistoryRepository = (*HistoryRepository)(nil)
