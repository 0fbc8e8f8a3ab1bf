package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kert-club/community-api/internal/application"
	"github.com/kert-club/community-api/internal/domain/entity"
	"github.com/kert-club/community-api/internal/interface/middleware"
	"github.com/kert-club/community-api/pkg/helpers"
	"github.com/kert-club/community-api/pkg/response"
	"github.com/kert-club/community-api/pkg/validation"
)

// AuthService is the slice of the auth application service the handler needs.
type AuthService interface {
	SignUp(ctx context.Context, in application.SignUpInput) (*entity.User, error)
	Login(ctx context.Context, studentID int64, rawPassword string) (*entity.User, error)
	IssueTokens(ctx context.Context, u *entity.User) (application.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (application.TokenPair, error)
	Logout(ctx context.Context, studentID int64)
}

type AuthHandler struct {
	Svc     AuthService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type signupRequest struct {
	StudentID      int64  `json:"student_id" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required"`
	ProfilePicture string `json:"profile_picture"`
	Generation     int    `json:"generation" binding:"gte=0"`
	Major          string `json:"major"`
	Password       string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	StudentID int64  `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.SignUp(c.Request.Context(), application.SignUpInput{
		StudentID:      req.StudentID,
		Email:          req.Email,
		Name:           req.Name,
		ProfilePicture: req.ProfilePicture,
		Generation:     req.Generation,
		Major:          req.Major,
		Password:       req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAlreadyExists):
			response.Error(c, http.StatusConflict, "user already exists", nil)
		case errors.Is(err, application.ErrPictureTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "profile picture exceeds 2MiB", nil)
		default:
			h.Logger.WithError(err).WithField("student_id", req.StudentID).Error("signup failed")
			response.Error(c, http.StatusInternalServerError, "signup failed", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, toUserResponse(u), "signup successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.StudentID, req.Password)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	pair, err := h.Svc.IssueTokens(c.Request.Context(), u)
	if err != nil {
		h.Logger.WithError(err).WithField("student_id", u.StudentID).Error("token issue failed")
		response.Error(c, http.StatusInternalServerError, "login failed", nil)
		return
	}

	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, toUserResponse(u), "login successful")
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error(c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, map[string]any{"refreshed": true}, "token refreshed")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), middleware.StudentID(c))
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, map[string]any{"logged_out": true}, "logged out")
}
