package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kert-club/community-api/internal/application"
	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/pkg/response"
	"github.com/kert-club/community-api/pkg/validation"
)

// HistoryService is the slice of the history application service the handler needs.
type HistoryService interface {
	List(ctx context.Context) ([]entity.History, error)
	Get(ctx context.Context, id int64) (*entity.History, error)
	Create(ctx context.Context, in application.HistoryInput) (*entity.History, error)
	Update(ctx context.Context, id int64, in application.HistoryInput) (*entity.History, error)
	Delete(ctx context.Context, id int64) error
}

type HistoryHandler struct {
	Svc    HistoryService
	Logger *logrus.Logger
}

func NewHistoryHandler(svc HistoryService, logger *logrus.Logger) *HistoryHandler {
	return &HistoryHandler{Svc: svc, Logger: logger}
}

type historyRequest struct {
	Year    int    `json:"year" binding:"required,gte=1"`
	Month   int    `json:"month" binding:"required,gte=1,lte=12"`
	Content string `json:"content" binding:"required"`
}

func (h *HistoryHandler) List(c *gin.Context) {
	histories, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list histories failed")
		response.Error(c, http.StatusInternalServerError, "list histories failed", nil)
		return
	}
	out := make([]historyResponse, 0, len(histories))
	for i := range histories {
		out = append(out, toHistoryResponse(&histories[i]))
	}
	response.Success(c, http.StatusOK, out, "histories")
}

func (h *HistoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "history not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("history_id", id).Error("get history failed")
		response.Error(c, http.StatusInternalServerError, "get history failed", nil)
		return
	}
	response.Success(c, http.StatusOK, toHistoryResponse(record), "history")
}

func (h *HistoryHandler) Create(c *gin.Context) {
	var req historyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	record, err := h.Svc.Create(c.Request.Context(), application.HistoryInput{
		Year:    req.Year,
		Month:   req.Month,
		Content: req.Content,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create history failed")
		response.Error(c, http.StatusInternalServerError, "create history failed", nil)
		return
	}
	response.Success(c, http.StatusOK, toHistoryResponse(record), "history created")
}

func (h *HistoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req historyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	record, err := h.Svc.Update(c.Request.Context(), id, application.HistoryInput{
		Year:    req.Year,
		Month:   req.Month,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "history not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("history_id", id).Error("update history failed")
		response.Error(c, http.StatusInternalServerError, "update history failed", nil)
		return
	}
	response.Success(c, http.StatusOK, toHistoryResponse(record), "history updated")
}

func (h *HistoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.Logger.WithError(err).WithField("history_id", id).Error("delete history failed")
		response.Error(c, http.StatusInternalServerError, "delete history failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
