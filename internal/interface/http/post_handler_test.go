package handlers

import (
	"context"
	"encoding/json"
	"net/http"
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

// stubPostSvc scripts post service outcomes per test.
type stubPostSvc struct {
	createErr  error
	updateErr  error
	post       *entity.Post
	searchDocs []application.PostDoc
	searchQ    string
}

func (s *stubPostSvc) List(_ context.Context) ([]entity.Post, error) {
	if s.post == nil {
		return []entity.Post{}, nil
	}
	return []entity.Post{*s.post}, nil
}

func (s *stubPostSvc) Get(_ context.Context, id int64) (*entity.Post, error) {
	if s.post == nil || s.post.ID != id {
		return nil, application.ErrNotFound
	}
	return s.post, nil
}

func (s *stubPostSvc) Create(_ context.Context, in application.CreatePostInput) (*entity.Post, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &entity.Post{ID: 1, Title: in.Title, Tag: in.Tag, Content: in.Content, StudentID: in.StudentID}, nil
}

func (s *stubPostSvc) Update(_ context.Context, id int64, in application.UpdatePostInput) (*entity.Post, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &entity.Post{ID: id, Title: in.Title, Tag: in.Tag, Content: in.Content}, nil
}

func (s *stubPostSvc) Delete(_ context.Context, _ int64) error { return nil }

func (s *stubPostSvc) Search(_ context.Context, q string) ([]application.PostDoc, error) {
	s.searchQ = q
	return s.searchDocs, nil
}

func newPostRouter(t *testing.T, svc PostService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	h := NewPostHandler(svc, logrus.New())
	r := gin.New()
	api := r.Group("/api")
	api.GET("/posts", h.List)
	api.GET("/posts/search", h.Search)
	api.GET("/posts/:id", h.Get)

	admin := api.Group("")
	admin.Use(sessionStub(2000000001, true), middleware.RequireAdmin())
	admin.POST("/posts", h.Create)
	admin.PUT("/posts/:id", h.Update)
	admin.DELETE("/posts/:id", h.Delete)
	return r
}

func TestPostRoutes_Create(t *testing.T) {
	svc := &stubPostSvc{}
	r := newPostRouter(t, svc)

	w := doJSON(r, http.MethodPost, "/api/posts", gin.H{
		"title":      "Retrospective",
		"tag":        "dev",
		"content":    "body",
		"student_id": 2019001234,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var env response.APIResponse[postResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, int64(1), env.Data.ID)
	assert.Equal(t, int64(2019001234), env.Data.StudentID)
}

func TestPostRoutes_CreateUnknownOwner(t *testing.T) {
	svc := &stubPostSvc{createErr: application.ErrInvalidReference}
	r := newPostRouter(t, svc)

	w := doJSON(r, http.MethodPost, "/api/posts", gin.H{
		"title":      "Retrospective",
		"content":    "body",
		"student_id": 404,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPostRoutes_CreateMissingFields(t *testing.T) {
	svc := &stubPostSvc{}
	r := newPostRouter(t, svc)

	w := doJSON(r, http.MethodPost, "/api/posts", gin.H{"title": "no content"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostRoutes_GetMissing(t *testing.T) {
	svc := &stubPostSvc{}
	r := newPostRouter(t, svc)

	w := doJSON(r, http.MethodGet, "/api/posts/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostRoutes_Delete(t *testing.T) {
	svc := &stubPostSvc{}
	r := newPostRouter(t, svc)

	w := doJSON(r, http.MethodDelete, "/api/posts/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestPostRoutes_Search(t *testing.T) {
	svc := &stubPostSvc{searchDocs: []application.PostDoc{{ID: 1, Title: "Retrospective"}}}
	r := newPostRouter(t, svc)

	w := doJSON(r, http.MethodGet, "/api/posts/search?q=retro", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "retro", svc.searchQ)

	var env response.APIResponse[[]application.PostDoc]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "Retrospective", env.Data[0].Title)

	w = doJSON(r, http.MethodGet, "/api/posts/search", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
