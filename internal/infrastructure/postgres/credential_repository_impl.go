package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/internal/domain/repository"
)

type CredentialRepository struct {
	pool *pgxpool.Pool
}

func NewCredentialRepository(pool *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{pool: pool}
}

func (r *CredentialRepository) Create(ctx context.Context, c *entity.Credential) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO credentials (user_id, password_hash)
		VALUES ($1, $2)
		RETURNING created_at
	`, c.UserID, c.PasswordHash)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *CredentialRepository) GetByUserID(ctx context.Context, studentID int64) (*entity.Credential, error) {
	c := &entity.Credential{}
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, password_hash, created_at
		FROM credentials
		WHERE user_id = $1
	`, studentID)
	if err := row.Scan(&c.UserID, &c.PasswordHash, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

var _ repository.CredentialRepository = (*CredentialRepository)(nil)
