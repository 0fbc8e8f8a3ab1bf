package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kert-club/community-api/internal/container"
	handlers "github.com/kert-club/community-api/internal/interface/http"
	"github.com/kert-club/community-api/internal/interface/middleware"
	"github.com/kert-club/community-api/pkg/helpers"
)

// PostModule wires the blog.
// Public: GET /api/posts, GET /api/posts/:id, GET /api/posts/search.
// Admin: POST/PUT/DELETE.
type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath())

	rg.GET("/posts", m.Handler.List)
	rg.GET("/posts/search", searchLimiter, m.Handler.Search)
	rg.GET("/posts/:id", m.Handler.Get)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT), middleware.RequireAdmin())
	{
		admin.POST("/posts", m.Handler.Create)
		admin.PUT("/posts/:id", m.Handler.Update)
		admin.DELETE("/posts/:id", m.Handler.Delete)
	}
}
