package repository

import (
	"context"

	"github.com/kert-club/community-api/internal/domain/entity"
)

// CredentialRepository maps a student id to its stored password hash.
// There is deliberately no update or delete: password change is not part of
// this service.
type CredentialRepository interface {
	Create(ctx context.Context, c *entity.Credential) error
	GetByUserID(ctx context.Context, studentID int64) (*entity.Credential, error)
}
