package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kert-club/community-api/internal/application"
	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/internal/interface/middleware"
	"github.com/kert-club/community-api/pkg/response"
	"github.com/kert-club/community-api/pkg/validation"
)

// UserService is the slice of the user application service the handler needs.
type UserService interface {
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, studentID int64) (*entity.User, error)
	Update(ctx context.Context, studentID int64, in application.UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, studentID int64) error
	UploadAvatar(ctx context.Context, studentID int64, r io.Reader, filename, contentType string) (string, error)
}

type UserHandler struct {
	Svc    UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required"`
	ProfilePicture string `json:"profile_picture"`
	Generation     int    `json:"generation" binding:"gte=0"`
	Major          string `json:"major"`
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Error(c, http.StatusInternalServerError, "list users failed", nil)
		return
	}
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	response.Success(c, http.StatusOK, out, "users")
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("student_id", id).Error("get user failed")
		response.Error(c, http.StatusInternalServerError, "get user failed", nil)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "user")
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), id, application.UpdateUserInput{
		Email:          req.Email,
		Name:           req.Name,
		ProfilePicture: req.ProfilePicture,
		Generation:     req.Generation,
		Major:          req.Major,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrPictureTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "profile picture exceeds 2MiB", nil)
		default:
			h.Logger.WithError(err).WithField("student_id", id).Error("update user failed")
			response.Error(c, http.StatusInternalServerError, "update user failed", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "user updated")
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrUserReferenced) {
			response.Error(c, http.StatusConflict, "user still owns posts", nil)
			return
		}
		h.Logger.WithError(err).WithField("student_id", id).Error("delete user failed")
		response.Error(c, http.StatusInternalServerError, "delete user failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadAvatar accepts a multipart "avatar" file for the authenticated user.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "missing avatar file", nil)
		return
	}
	if fh.Size > application.MaxProfilePictureSize {
		response.Error(c, http.StatusRequestEntityTooLarge, "avatar exceeds 2MiB", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "unreadable avatar file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	studentID := middleware.StudentID(c)
	url, err := h.Svc.UploadAvatar(c.Request.Context(), studentID, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.WithError(err).WithField("student_id", studentID).Error("avatar upload failed")
		response.Error(c, http.StatusInternalServerError, "avatar upload failed", nil)
		return
	}
	response.Success(c, http.StatusOK, map[string]any{"profile_picture": url}, "avatar uploaded")
}
