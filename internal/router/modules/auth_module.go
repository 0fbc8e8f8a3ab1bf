package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kert-club/community-api/internal/container"
	handlers "github.com/kert-club/community-api/internal/interface/http"
	"github.com/kert-club/community-api/internal/interface/middleware"
	"github.com/kert-club/community-api/pkg/helpers"
)

// AuthModule wires signup/login/refresh/logout.
// Public: POST /api/signup, /api/login, /api/refresh (rate limited per IP).
// Protected: POST /api/logout.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP())

	rg.POST("/signup", signupLimiter, m.Handler.SignUp)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
	}
}
