package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// CreateWithCredential inserts the user row and its credential row inside one
// transaction. Either both land or neither does.
func (r *UserRepository) CreateWithCredential(ctx context.Context, u *entity.User, passwordHash string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO users (student_id, email, name, profile_picture, generation, major)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, u.StudentID, u.Email, u.Name, u.ProfilePicture, u.Generation, u.Major)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapError(err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO credentials (user_id, password_hash)
		VALUES ($1, $2)
	`, u.StudentID, passwordHash); err != nil {
		return mapError(err)
	}

	return tx.Commit(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, studentID int64) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT student_id, email, name, profile_picture, generation, major, created_at, updated_at
		FROM users
		WHERE student_id = $1
	`, studentID)
	if err := row.Scan(&u.StudentID, &u.Email, &u.Name, &u.ProfilePicture,
		&u.Generation, &u.Major, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT student_id, email, name, profile_picture, generation, major, created_at, updated_at
		FROM users
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.StudentID, &u.Email, &u.Name, &u.ProfilePicture,
			&u.Generation, &u.Major, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Exists(ctx context.Context, studentID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE student_id = $1)
	`, studentID).Scan(&exists)
	return exists, err
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET email = $1, name = $2, profile_picture = $3, generation = $4, major = $5, updated_at = now()
		WHERE student_id = $6
		RETURNING updated_at
	`, u.Email, u.Name, u.ProfilePicture, u.Generation, u.Major, u.StudentID)
	if err := row.Scan(&u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return mapError(err)
	}
	return nil
}

// Delete removes the user and its credential. Idempotent: deleting an absent
// id is not an error. Rows still referencing the user (posts) surface as
// repository.ErrReferenced.
func (r *UserRepository) Delete(ctx context.Context, studentID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM credentials WHERE user_id = $1`, studentID); err != nil {
		return mapError(err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, studentID); err != nil {
		return mapError(err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE student_id = $1`, studentID); err != nil {
		return mapError(err)
	}
	return tx.Commit(ctx)
}

func (r *UserRepository) HasRole(ctx context.Context, studentID int64, role string) (bool, error) {
	var has bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM user_roles ur
			JOIN roles r ON r.id = ur.role_id
			WHERE ur.user_id = $1 AND r.name = $2
		)
	`, studentID, role).Scan(&has)
	return has, err
}

var _ repository.UserRepository = (*UserRepository)(nil)
