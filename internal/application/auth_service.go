package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/kert-club/community-api/internal/domain/entity"
	repo "github.com/kert-club/community-api/internal/domain/repository"
	"github.com/kert-club/community-api/pkg/helpers"
	"github.com/kert-club/community-api/pkg/mailer"
)

// MaxProfilePictureSize bounds the encoded profile picture accepted at signup.
const MaxProfilePictureSize = 2 * 1024 * 1024

const sessionTTL = 24 * time.Hour

// AuthService orchestrates signup and login over the user and credential
// stores, and owns the Redis-backed session lifecycle.
type AuthService struct {
	Users       repo.UserRepository
	Credentials repo.CredentialRepository
	JWT         *helpers.JWTManager
	Redis       *redis.Client
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewAuthService(users repo.UserRepository, creds repo.CredentialRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *AuthService {
	return &AuthService{
		Users:       users,
		Credentials: creds,
		JWT:         jwt,
		Redis:       rdb,
		Logger:      logger,
		Pub:         pub,
		MailEnabled: mailEnabled,
	}
}

type SignUpInput struct {
	StudentID      int64
	Email          string
	Name           string
	ProfilePicture string
	Generation     int
	Major          string
	Password       string
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func sessionKey(studentID int64) string {
	return "user:session:" + strconv.FormatInt(studentID, 10)
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// SignUp validates the request, hashes the password and persists the user and
// credential rows in one transaction. The hash never leaves the service.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*entity.User, error) {
	if len(in.ProfilePicture) > MaxProfilePictureSize {
		return nil, ErrPictureTooLarge
	}

	exists, err := s.Users.Exists(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		StudentID:      in.StudentID,
		Email:          in.Email,
		Name:           in.Name,
		ProfilePicture: in.ProfilePicture,
		Generation:     in.Generation,
		Major:          in.Major,
	}
	if err := s.Users.CreateWithCredential(ctx, u, hash); err != nil {
		// Concurrent signup can still trip the unique constraint.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	s.enqueueWelcome(ctx, u)
	return u, nil
}

func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data: map[string]any{
			"Name":      u.Name,
			"StudentID": u.StudentID,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("student_id", u.StudentID).Warn("welcome email enqueue failed")
	}
}

// Login verifies the password against the stored credential. Every failure
// mode collapses into ErrInvalidCredentials so callers cannot probe for
// registered ids.
func (s *AuthService) Login(ctx context.Context, studentID int64, rawPassword string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, studentID)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	cred, err := s.Credentials.GetByUserID(ctx, studentID)
	if err != nil || cred == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(cred.PasswordHash, rawPassword) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates an access/refresh pair and records the session in
// Redis. The admin flag is resolved once here and cached on the session so
// the role gate never touches the database per request.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.StudentID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.StudentID, sid)
	if err != nil {
		return TokenPair{}, err
	}

	isAdmin, err := s.Users.HasRole(ctx, u.StudentID, entity.RoleAdmin)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("student_id", u.StudentID).Warn("role lookup failed, session created without admin")
		}
		isAdmin = false
	}

	if s.Redis != nil {
		key := sessionKey(u.StudentID)
		fields := map[string]any{
			"student_id": strconv.FormatInt(u.StudentID, 10),
			"email":      u.Email,
			"name":       u.Name,
			"is_admin":   strconv.FormatBool(isAdmin),
			"sid":        sid,
			"created_at": nowRFC3339(),
		}
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, sessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh rotates the session id and both tokens. The refresh token is only
// honored while its session id matches the one stored in Redis.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, claims.StudentID)
	if err != nil || u == nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	if s.Redis != nil {
		key := sessionKey(u.StudentID)
		data, rErr := s.Redis.HGetAll(ctx, key).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, ErrInvalidCredentials
		}
	}

	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.StudentID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.StudentID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	if s.Redis != nil {
		key := sessionKey(u.StudentID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{"sid": sid, "updated_at": nowRFC3339()})
		pipe.Expire(ctx, key, sessionTTL)
		_, _ = pipe.Exec(ctx)
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Logout drops the server-side session.
func (s *AuthService) Logout(ctx context.Context, studentID int64) {
	if s.Redis == nil {
		return
	}
	_ = s.Redis.Del(ctx, sessionKey(studentID)).Err()
}
