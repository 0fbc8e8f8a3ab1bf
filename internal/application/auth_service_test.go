package application_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kert-club/community-api/internal/application"
	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/internal/domain/repository"
	"github.com/kert-club/community-api/internal/domain/repository/mocks"
	"github.com/kert-club/community-api/pkg/helpers"
)

func newAuthService(users *mocks.UserRepository, creds *mocks.CredentialRepository) *application.AuthService {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return application.NewAuthService(users, creds, jwt, nil, logrus.New(), nil, false)
}

func validSignup() application.SignUpInput {
	return application.SignUpInput{
		StudentID:  2019001234,
		Email:      "newbie@knu.ac.kr",
		Name:       "Newbie",
		Generation: 27,
		Major:      "Computer Engineering",
		Password:   "StrongPass123",
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	users := new(mocks.UserRepository)
	creds := new(mocks.CredentialRepository)
	svc := newAuthService(users, creds)
	ctx := context.Background()
	in := validSignup()

	users.On("Exists", ctx, in.StudentID).Return(false, nil).Once()
	users.On("CreateWithCredential", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.StudentID == in.StudentID && u.Email == in.Email && u.Name == in.Name
	}), mock.MatchedBy(func(hash string) bool {
		// the stored hash must verify against the raw password
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)) == nil
	})).Run(func(args mock.Arguments) {
		u := args.Get(1).(*entity.User)
		u.CreatedAt = time.Now()
		u.UpdatedAt = u.CreatedAt
	}).Return(nil).Once()

	u, err := svc.SignUp(ctx, in)

	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, in.StudentID, u.StudentID)
	assert.False(t, u.CreatedAt.IsZero())
	users.AssertExpectations(t)
}

func TestAuthService_SignUp_AlreadyExists(t *testing.T) {
	users := new(mocks.UserRepository)
	creds := new(mocks.CredentialRepository)
	svc := newAuthService(users, creds)
	ctx := context.Background()
	in := validSignup()

	users.On("Exists", ctx, in.StudentID).Return(true, nil).Once()

	_, err := svc.SignUp(ctx, in)

	require.ErrorIs(t, err, application.ErrAlreadyExists)
	users.AssertNotCalled(t, "CreateWithCredential", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_SignUp_DuplicateRace(t *testing.T) {
	users := new(mocks.UserRepository)
	creds := new(mocks.CredentialRepository)
	svc := newAuthService(users, creds)
	ctx := context.Background()
	in := validSignup()

	users.On("Exists", ctx, in.StudentID).Return(false, nil).Once()
	users.On("CreateWithCredential", ctx, mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

	_, err := svc.SignUp(ctx, in)

	require.ErrorIs(t, err, application.ErrAlreadyExists)
}

func TestAuthService_SignUp_PictureTooLarge(t *testing.T) {
	users := new(mocks.UserRepository)
	creds := new(mocks.CredentialRepository)
	svc := newAuthService(users, creds)
	in := validSignup()
	in.ProfilePicture = strings.Repeat("a", application.MaxProfilePictureSize+1)

	_, err := svc.SignUp(context.Background(), in)

	require.ErrorIs(t, err, application.ErrPictureTooLarge)
	// rejected before any repository interaction
	users.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "CreateWithCredential", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_SignUp_PictureAtLimit(t *testing.T) {
	users := new(mocks.UserRepository)
	creds := new(mocks.CredentialRepository)
	svc := newAuthService(users, creds)
	ctx := context.Background()
	in := validSignup()
	in.ProfilePicture = strings.Repeat("a", application.MaxProfilePictureSize)

	users.On("Exists", ctx, in.StudentID).Return(false, nil).Once()
	users.On("CreateWithCredential", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.SignUp(ctx, in)

	require.NoError(t, err)
}

func TestAuthService_Login_Roundtrip(t *testing.T) {
	users := new(mocks.UserRepository)
	creds := new(mocks.CredentialRepository)
	svc := newAuthService(users, creds)
	ctx := context.Background()

	hash, err := helpers.HashPassword("StrongPass123")
	require.NoError(t, err)

	user := &entity.User{StudentID: 2019001234, Email: "newbie@knu.ac.kr", Name: "Newbie"}
	users.On("GetByID", ctx, user.StudentID).Return(user, nil)
	creds.On("GetByUserID", ctx, user.StudentID).Return(&entity.Credential{
		UserID:       user.StudentID,
		PasswordHash: hash,
	}, nil)

	got, err := svc.Login(ctx, user.StudentID, "StrongPass123")
	require.NoError(t, err)
	assert.Equal(t, user.StudentID, got.StudentID)

	_, err = svc.Login(ctx, user.StudentID, "WrongPass456")
	require.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := new(mocks.UserRepository)
	creds := new(mocks.CredentialRepository)
	svc := newAuthService(users, creds)
	ctx := context.Background()

	users.On("GetByID", ctx, int64(404)).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Login(ctx, 404, "whatever1")
	require.ErrorIs(t, err, application.ErrInvalidCredentials)
	// credential lookups never happen for unknown users
	creds.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestAuthService_Login_MissingCredential(t *testing.T) {
	users := new(mocks.UserRepository)
	creds := new(mocks.CredentialRepository)
	svc := newAuthService(users, creds)
	ctx := context.Background()

	user := &entity.User{StudentID: 2019001234}
	users.On("GetByID", ctx, user.StudentID).Return(user, nil).Once()
	creds.On("GetByUserID", ctx, user.StudentID).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Login(ctx, user.StudentID, "whatever1")
	require.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestAuthService_IssueTokens(t *testing.T) {
	users := new(mocks.UserRepository)
	creds := new(mocks.CredentialRepository)
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	svc := application.NewAuthService(users, creds, jwt, nil, logrus.New(), nil, false)
	ctx := context.Background()

	user := &entity.User{StudentID: 2019001234, Email: "newbie@knu.ac.kr"}
	users.On("HasRole", ctx, user.StudentID, entity.RoleAdmin).Return(true, nil).Once()

	pair, err := svc.IssueTokens(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.AccessTokenExpiry.After(time.Now()))

	claims, err := jwt.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.StudentID, claims.StudentID)
	assert.NotEmpty(t, claims.SessionID)

	rclaims, err := jwt.ParseRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, claims.SessionID, rclaims.SessionID)
}
