package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware)
	router.GET("/protected", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return router
}

func TestAuthMiddlewareRejectsMalformedHeaders(t *testing.T) {
	router := newAuthRouter()

	headers := []string{
		"",
		"Bearer",
		"Bearer ",
		"Basic dXNlcjpwYXNz",
	}
	for _, header := range headers {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	router := newAuthRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
