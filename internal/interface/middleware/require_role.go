package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kert-club/community-api/pkg/response"
)

// RequireAdmin gates mutating endpoints. It must run after Auth: the caller
// is known to hold a session here, so a missing admin flag is 403, not 401.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CtxIsAdminKey) {
			response.AbortError(c, http.StatusForbidden, "admin role required", nil)
			return
		}
		c.Next()
	}
}
