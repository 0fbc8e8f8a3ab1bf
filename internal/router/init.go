package router

import (
	"github.com/kert-club/community-api/internal/application"
	"github.com/kert-club/community-api/internal/container"
	pginfra "github.com/kert-club/community-api/internal/infrastructure/postgres"
	handlers "github.com/kert-club/community-api/internal/interface/http"
	"github.com/kert-club/community-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	creds := pginfra.NewCredentialRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	histories := pginfra.NewHistoryRepository(pool)

	authSvc := application.NewAuthService(
		users,
		creds,
		container.GetJWT(),
		container.GetRedis(),
		logger,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)
	userSvc := application.NewUserService(users, container.GetGCS(), cfg.GCSBucket, container.GetRedis(), logger)
	postSvc := application.NewPostService(posts, users, container.GetES(), cfg.ESPostsIndex, logger)
	historySvc := application.NewHistoryService(histories)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure), container.GetJWT()))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetJWT()))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), container.GetJWT()))
	r.Add(modules.NewHistoryModule(handlers.NewHistoryHandler(historySvc, logger), container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
