package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kert-club/community-api/pkg/helpers"
	"github.com/kert-club/community-api/pkg/response"
)

// Context keys set by Auth.
const (
	CtxStudentIDKey = "studentID"
	CtxIsAdminKey   = "isAdmin"
)

// Auth validates the access token and ensures an active session exists in
// Redis. Anything short of a live, matching session is 401; the 403 decision
// belongs to RequireAdmin.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}

		key := "user:session:" + strconv.FormatInt(claims.StudentID, 10)
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 {
			response.AbortError(c, http.StatusUnauthorized, "session not found", nil)
			return
		}
		if data["sid"] != claims.SessionID {
			response.AbortError(c, http.StatusUnauthorized, "session superseded", nil)
			return
		}

		isAdmin, _ := strconv.ParseBool(data["is_admin"])
		c.Set(CtxStudentIDKey, claims.StudentID)
		c.Set(CtxIsAdminKey, isAdmin)
		c.Set("userName", data["name"])
		c.Set("userEmail", data["email"])
		c.Next()
	}
}

// StudentID reads the authenticated student id from the context.
func StudentID(c *gin.Context) int64 {
	v, ok := c.Get(CtxStudentIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
