package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kert-club/community-api/internal/domain/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapError converts pgx/pgconn errors into the repository error vocabulary.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return repository.ErrDuplicate
		case pgForeignKeyViolation:
			return repository.ErrReferenced
		}
	}
	return err
}
