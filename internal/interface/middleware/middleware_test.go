package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		setAdmin *bool
		want     int
	}{
		{"admin session passes", ptr(true), http.StatusOK},
		{"non-admin session forbidden", ptr(false), http.StatusForbidden},
		{"flag never set forbidden", nil, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			if tc.setAdmin != nil {
				admin := *tc.setAdmin
				r.Use(func(c *gin.Context) { c.Set(CtxIsAdminKey, admin) })
			}
			r.Use(RequireAdmin())
			handled := false
			r.GET("/", func(c *gin.Context) {
				handled = true
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, tc.want, w.Code)
			assert.Equal(t, tc.want == http.StatusOK, handled)
		})
	}
}

func ptr(b bool) *bool { return &b }

func TestRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(got *string) *gin.Engine {
		r := gin.New()
		r.Use(RealIP())
		r.GET("/", func(c *gin.Context) {
			*got = ipFromCtx(c)
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("left-most forwarded entry wins", func(t *testing.T) {
		var got string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		newRouter(&got).ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "203.0.113.7", got)
	})

	t.Run("garbage header falls back to client ip", func(t *testing.T) {
		var got string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "not-an-ip")
		req.RemoteAddr = "192.0.2.9:1234"
		newRouter(&got).ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "192.0.2.9", got)
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
}
