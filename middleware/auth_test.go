package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brewhouse/config"
	"brewhouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret:      "test-secret",
		AccessTokenTTL: 15 * time.Minute,
	}
	t.Cleanup(func() { config.AppConfig = prev })

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt("user_id"),
			"role":    c.GetString("user_role"),
		})
	})
	r.GET("/admin", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := setupRouter(t)
	w := doRequest(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := setupRouter(t)

	for _, header := range []string{"Bearer", "Token abc", "abc"} {
		w := doRequest(r, "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := setupRouter(t)
	w := doRequest(r, "/protected", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := setupRouter(t)

	token, err := utils.GenerateToken(7, "dina@example.com", "customer")
	require.NoError(t, err)

	w := doRequest(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)
}

func TestAdminMiddlewareRejectsCustomer(t *testing.T) {
	r := setupRouter(t)

	token, err := utils.GenerateToken(7, "dina@example.com", "customer")
	require.NoError(t, err)

	w := doRequest(r, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	r := setupRouter(t)

	token, err := utils.GenerateToken(1, "admin@example.com", "admin")
	require.NoError(t, err)

	w := doRequest(r, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
