package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kert-club/community-api/internal/application"
	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/pkg/response"
	"github.com/kert-club/community-api/pkg/validation"
)

// stubAuthSvc scripts the auth service outcomes per test.
type stubAuthSvc struct {
	signUpErr error
	signUpOut *entity.User
	loginErr  error
	loginOut  *entity.User
}

func (s *stubAuthSvc) SignUp(_ context.Context, _ application.SignUpInput) (*entity.User, error) {
	return s.signUpOut, s.signUpErr
}

func (s *stubAuthSvc) Login(_ context.Context, _ int64, _ string) (*entity.User, error) {
	return s.loginOut, s.loginErr
}

func (s *stubAuthSvc) IssueTokens(_ context.Context, _ *entity.User) (application.TokenPair, error) {
	exp := time.Now().Add(time.Hour)
	return application.TokenPair{
		AccessToken:        "access",
		AccessTokenExpiry:  exp,
		RefreshToken:       "refresh",
		RefreshTokenExpiry: exp.Add(23 * time.Hour),
	}, nil
}

func (s *stubAuthSvc) Refresh(_ context.Context, _ string) (application.TokenPair, error) {
	return application.TokenPair{}, application.ErrInvalidCredentials
}

func (s *stubAuthSvc) Logout(_ context.Context, _ int64) {}

func newAuthRouter(t *testing.T, svc AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	h := NewAuthHandler(svc, logrus.New(), "", false)
	r := gin.New()
	r.POST("/api/signup", h.SignUp)
	r.POST("/api/login", h.Login)
	return r
}

func validSignupBody() gin.H {
	return gin.H{
		"student_id": 2019001234,
		"email":      "newbie@knu.ac.kr",
		"name":       "Newbie",
		"generation": 27,
		"major":      "Computer Engineering",
		"password":   "StrongPass123",
	}
}

func TestAuthRoutes_SignUp(t *testing.T) {
	now := time.Now()
	svc := &stubAuthSvc{signUpOut: &entity.User{
		StudentID: 2019001234,
		Email:     "newbie@knu.ac.kr",
		Name:      "Newbie",
		CreatedAt: now,
		UpdatedAt: now,
	}}
	r := newAuthRouter(t, svc)

	w := doJSON(r, http.MethodPost, "/api/signup", validSignupBody())
	require.Equal(t, http.StatusOK, w.Code)

	var env response.APIResponse[userResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, int64(2019001234), env.Data.StudentID)
}

func TestAuthRoutes_SignUpConflict(t *testing.T) {
	svc := &stubAuthSvc{signUpErr: application.ErrAlreadyExists}
	r := newAuthRouter(t, svc)

	w := doJSON(r, http.MethodPost, "/api/signup", validSignupBody())
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthRoutes_SignUpPictureTooLarge(t *testing.T) {
	svc := &stubAuthSvc{signUpErr: application.ErrPictureTooLarge}
	r := newAuthRouter(t, svc)

	w := doJSON(r, http.MethodPost, "/api/signup", validSignupBody())
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestAuthRoutes_SignUpValidation(t *testing.T) {
	svc := &stubAuthSvc{}
	r := newAuthRouter(t, svc)

	body := validSignupBody()
	body["password"] = "short"
	w := doJSON(r, http.MethodPost, "/api/signup", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var env response.APIResponse[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	details, ok := env.Error.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "password")

	body = validSignupBody()
	body["email"] = "not-an-email"
	w = doJSON(r, http.MethodPost, "/api/signup", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body = validSignupBody()
	delete(body, "student_id")
	w = doJSON(r, http.MethodPost, "/api/signup", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthRoutes_Login(t *testing.T) {
	svc := &stubAuthSvc{loginOut: &entity.User{StudentID: 2019001234, Email: "newbie@knu.ac.kr"}}
	r := newAuthRouter(t, svc)

	w := doJSON(r, http.MethodPost, "/api/login", gin.H{"student_id": 2019001234, "password": "StrongPass123"})
	require.Equal(t, http.StatusOK, w.Code)

	// both tokens land in cookies
	cookies := w.Result().Cookies()
	names := make([]string, 0, len(cookies))
	for _, c := range cookies {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "access_token")
	assert.Contains(t, names, "refresh_token")
}

func TestAuthRoutes_LoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthSvc{loginErr: application.ErrInvalidCredentials}
	r := newAuthRouter(t, svc)

	w := doJSON(r, http.MethodPost, "/api/login", gin.H{"student_id": 2019001234, "password": "WrongPass456"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}
