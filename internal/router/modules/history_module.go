package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/kert-club/community-api/internal/container"
	handlers "github.com/kert-club/community-api/internal/interface/http"
	"github.com/kert-club/community-api/internal/interface/middleware"
	"github.com/kert-club/community-api/pkg/helpers"
)

// HistoryModule wires the club timeline.
// Public: GET /api/histories, GET /api/histories/:id.
// Admin: POST/PUT/DELETE.
type HistoryModule struct {
	Handler *handlers.HistoryHandler
	JWT     *helpers.JWTManager
}

func NewHistoryModule(h *handlers.HistoryHandler, jwt *helpers.JWTManager) *HistoryModule {
	return &HistoryModule{Handler: h, JWT: jwt}
}

func (m *HistoryModule) Register(rg *gin.RouterGroup) {
	rg.GET("/histories", m.Handler.List)
	rg.GET("/histories/:id", m.Handler.Get)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT), middleware.RequireAdmin())
	{
		admin.POST("/histories", m.Handler.Create)
		admin.PUT("/histories/:id", m.Handler.Update)
		admin.DELETE("/histories/:id", m.Handler.Delete)
	}
}
