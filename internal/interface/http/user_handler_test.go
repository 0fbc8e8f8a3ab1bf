package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kert-club/community-api/internal/application"
	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/internal/interface/middleware"
	"github.com/kert-club/community-api/pkg/response"
	"github.com/kert-club/community-api/pkg/validation"
)

// stubUserSvc scripts user service outcomes per test.
type stubUserSvc struct {
	user      *entity.User
	deleteErr error
	avatarURL string
	avatarID  int64
}

func (s *stubUserSvc) List(_ context.Context) ([]entity.User, error) {
	if s.user == nil {
		return []entity.User{}, nil
	}
	return []entity.User{*s.user}, nil
}

func (s *stubUserSvc) Get(_ context.Context, id int64) (*entity.User, error) {
	if s.user == nil || s.user.StudentID != id {
		return nil, application.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserSvc) Update(_ context.Context, id int64, in application.UpdateUserInput) (*entity.User, error) {
	if s.user == nil || s.user.StudentID != id {
		return nil, application.ErrNotFound
	}
	u := *s.user
	u.Email = in.Email
	u.Name = in.Name
	return &u, nil
}

func (s *stubUserSvc) Delete(_ context.Context, _ int64) error { return s.deleteErr }

func (s *stubUserSvc) UploadAvatar(_ context.Context, id int64, r io.Reader, _, _ string) (string, error) {
	s.avatarID = id
	_, _ = io.Copy(io.Discard, r)
	return s.avatarURL, nil
}

func newUserRouter(t *testing.T, svc UserService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	h := NewUserHandler(svc, logrus.New())
	r := gin.New()
	api := r.Group("/api")
	api.GET("/users", h.List)
	api.GET("/users/:id", h.Get)

	me := api.Group("")
	me.Use(sessionStub(2019001234, false))
	me.POST("/users/me/avatar", h.UploadAvatar)

	admin := api.Group("")
	admin.Use(sessionStub(2000000001, true), middleware.RequireAdmin())
	admin.PUT("/users/:id", h.Update)
	admin.DELETE("/users/:id", h.Delete)
	return r
}

func TestUserRoutes_GetAndUpdate(t *testing.T) {
	svc := &stubUserSvc{user: &entity.User{StudentID: 2019001234, Email: "old@knu.ac.kr", Name: "Old"}}
	r := newUserRouter(t, svc)

	w := doJSON(r, http.MethodGet, "/api/users/2019001234", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/users/404", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/api/users/2019001234", gin.H{
		"email": "new@knu.ac.kr",
		"name":  "New",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var env response.APIResponse[userResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "new@knu.ac.kr", env.Data.Email)

	// email must stay well formed
	w = doJSON(r, http.MethodPut, "/api/users/2019001234", gin.H{
		"email": "not-an-email",
		"name":  "New",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserRoutes_DeleteConflictOnOwnedPosts(t *testing.T) {
	svc := &stubUserSvc{deleteErr: application.ErrUserReferenced}
	r := newUserRouter(t, svc)

	w := doJSON(r, http.MethodDelete, "/api/users/2019001234", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestUserRoutes_Delete(t *testing.T) {
	svc := &stubUserSvc{}
	r := newUserRouter(t, svc)

	w := doJSON(r, http.MethodDelete, "/api/users/2019001234", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestUserRoutes_UploadAvatar(t *testing.T) {
	svc := &stubUserSvc{avatarURL: "https://storage.googleapis.com/kert/avatars/2019001234/x.png"}
	r := newUserRouter(t, svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/users/me/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// the avatar belongs to the session holder, not a request field
	assert.Equal(t, int64(2019001234), svc.avatarID)

	var env response.APIResponse[map[string]string]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, svc.avatarURL, env.Data["profile_picture"])
}

func TestUserRoutes_UploadAvatarMissingFile(t *testing.T) {
	svc := &stubUserSvc{}
	r := newUserRouter(t, svc)

	w := doJSON(r, http.MethodPost, "/api/users/me/avatar", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
