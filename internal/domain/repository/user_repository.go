package repository

import (
	"context"

	"github.com/kert-club/community-api/internal/domain/entity"
)

// UserRepository defines user-related database operations.
// CreateWithCredential persists the profile row and the credential row in a
// single transaction so signup can never leave orphaned state behind.
type UserRepository interface {
	CreateWithCredential(ctx context.Context, u *entity.User, passwordHash string) error
	GetByID(ctx context.Context, studentID int64) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Exists(ctx context.Context, studentID int64) (bool, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, studentID int64) error
	HasRole(ctx context.Context, studentID int64, role string) (bool, error)
}
