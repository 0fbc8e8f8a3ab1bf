package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kert-club/community-api/internal/application"
	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/pkg/response"
	"github.com/kert-club/community-api/pkg/validation"
)

// PostService is the slice of the post application service the handler needs.
type PostService interface {
	List(ctx context.Context) ([]entity.Post, error)
	Get(ctx context.Context, id int64) (*entity.Post, error)
	Create(ctx context.Context, in application.CreatePostInput) (*entity.Post, error)
	Update(ctx context.Context, id int64, in application.UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]application.PostDoc, error)
}

type PostHandler struct {
	Svc    PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Tag         string `json:"tag" binding:"max=100"`
	Description string `json:"description"`
	Content     string `json:"content" binding:"required"`
	StudentID   int64  `json:"student_id" binding:"required"`
}

type updatePostRequest struct {
	Title       string `json:"title" binding:"required"`
	Tag         string `json:"tag" binding:"max=100"`
	Description string `json:"description"`
	Content     string `json:"content" binding:"required"`
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Error(c, http.StatusInternalServerError, "list posts failed", nil)
		return
	}
	out := make([]postResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	response.Success(c, http.StatusOK, out, "posts")
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("post_id", id).Error("get post failed")
		response.Error(c, http.StatusInternalServerError, "get post failed", nil)
		return
	}
	response.Success(c, http.StatusOK, toPostResponse(p), "post")
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), application.CreatePostInput{
		Title:       req.Title,
		Tag:         req.Tag,
		Description: req.Description,
		Content:     req.Content,
		StudentID:   req.StudentID,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidReference) {
			response.Error(c, http.StatusUnprocessableEntity, "owner does not exist", nil)
			return
		}
		h.Logger.WithError(err).Error("create post failed")
		response.Error(c, http.StatusInternalServerError, "create post failed", nil)
		return
	}
	response.Success(c, http.StatusOK, toPostResponse(p), "post created")
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), id, application.UpdatePostInput{
		Title:       req.Title,
		Tag:         req.Tag,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("post_id", id).Error("update post failed")
		response.Error(c, http.StatusInternalServerError, "update post failed", nil)
		return
	}
	response.Success(c, http.StatusOK, toPostResponse(p), "post updated")
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.Logger.WithError(err).WithField("post_id", id).Error("delete post failed")
		response.Error(c, http.StatusInternalServerError, "delete post failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PostHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error(c, http.StatusBadRequest, "missing query", nil)
		return
	}
	docs, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		h.Logger.WithError(err).WithField("query", q).Error("post search failed")
		response.Error(c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, docs, "search results")
}
