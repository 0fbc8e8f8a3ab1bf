package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, tag, description, content, student_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Tag, p.Description, p.Content, p.StudentID)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, tag, description, content, student_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Title, &p.Tag, &p.Description, &p.Content,
		&p.StudentID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, tag, description, content, student_id, created_at, updated_at
		FROM posts
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]entity.Post, 0)
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Tag, &p.Description, &p.Content,
			&p.StudentID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Update overwrites the mutable fields only. Owner and created_at never change.
func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE posts
		SET title = $1, tag = $2, description = $3, content = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`, p.Title, p.Tag, p.Description, p.Content, p.ID)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return mapError(err)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return mapError(err)
}

var _ repository.PostRepository = (*PostRepository)(nil)
