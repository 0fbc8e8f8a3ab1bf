package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kert-club/community-api/internal/container"
	handlers "github.com/kert-club/community-api/internal/interface/http"
	"github.com/kert-club/community-api/internal/interface/middleware"
	"github.com/kert-club/community-api/pkg/helpers"
)

// UserModule wires the user directory.
// Public: GET /api/users, GET /api/users/:id.
// Session: POST /api/users/me/avatar.
// Admin: PUT /api/users/:id, DELETE /api/users/:id.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users", m.Handler.List)
	rg.GET("/users/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByStudentID()))
	{
		auth.POST("/users/me/avatar", m.Handler.UploadAvatar)

		admin := auth.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.PUT("/users/:id", m.Handler.Update)
			admin.DELETE("/users/:id", m.Handler.Delete)
		}
	}
}
