package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/kert-club/community-api/internal/domain/entity"
	repo "github.com/kert-club/community-api/internal/domain/repository"
	"github.com/kert-club/community-api/pkg/helpers"
)

// UserService owns profile CRUD and avatar storage.
type UserService struct {
	Users     repo.UserRepository
	GCS       *storage.Client
	GCSBucket string
	Redis     *redis.Client
	Logger    *logrus.Logger
}

func NewUserService(users repo.UserRepository, gcs *storage.Client, gcsBucket string, rdb *redis.Client, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, GCS: gcs, GCSBucket: gcsBucket, Redis: rdb, Logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, studentID int64) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

type UpdateUserInput struct {
	Email          string
	Name           string
	ProfilePicture string
	Generation     int
	Major          string
}

// Update overwrites the mutable profile fields. Student id and created_at are
// immutable.
func (s *UserService) Update(ctx context.Context, studentID int64, in UpdateUserInput) (*entity.User, error) {
	if len(in.ProfilePicture) > MaxProfilePictureSize {
		return nil, ErrPictureTooLarge
	}
	u, err := s.Users.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u.Email = in.Email
	u.Name = in.Name
	u.ProfilePicture = in.ProfilePicture
	u.Generation = in.Generation
	u.Major = in.Major
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.refreshSession(ctx, u)
	return u, nil
}

// Delete removes the user, their credential and role links. Idempotent on
// absent ids; fails when the user still owns posts.
func (s *UserService) Delete(ctx context.Context, studentID int64) error {
	if err := s.Users.Delete(ctx, studentID); err != nil {
		if errors.Is(err, repo.ErrReferenced) {
			return ErrUserReferenced
		}
		return err
	}
	if s.Redis != nil {
		_ = s.Redis.Del(ctx, sessionKey(studentID)).Err()
	}
	return nil
}

// UploadAvatar stores the image in GCS and records its public URL as the
// profile picture.
func (s *UserService) UploadAvatar(ctx context.Context, studentID int64, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Users.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", strconv.FormatInt(studentID, 10), uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}

	u.ProfilePicture = url
	if err := s.Users.Update(ctx, u); err != nil {
		return "", err
	}
	s.refreshSession(ctx, u)
	return url, nil
}

func (s *UserService) refreshSession(ctx context.Context, u *entity.User) {
	if s.Redis == nil {
		return
	}
	key := sessionKey(u.StudentID)
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"email":      u.Email,
		"name":       u.Name,
		"updated_at": nowRFC3339(),
	})
	if ttl, err := s.Redis.TTL(ctx, key).Result(); err == nil && ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
	}
}
