package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"unicourse_backend/internal/config"
	"unicourse_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(secret string) *gin.Engine {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret

	router := gin.New()
	admin := router.Group("/admin", AdminAuthMiddleware(cfg))
	admin.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func requestWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminAuthAllowsAdminToken(t *testing.T) {
	router := newAuthRouter("test-secret")
	token, err := util.GenerateJWT(util.RoleAdmin, "test-secret", time.Hour)
	require.NoError(t, err)

	rec := requestWithToken(router, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	router := newAuthRouter("test-secret")
	rec := requestWithToken(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthRejectsBadSignature(t *testing.T) {
	router := newAuthRouter("test-secret")
	token, err := util.GenerateJWT(util.RoleAdmin, "other-secret", time.Hour)
	require.NoError(t, err)

	rec := requestWithToken(router, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthRejectsNonAdminRole(t *testing.T) {
	router := newAuthRouter("test-secret")
	token, err := util.GenerateJWT("student", "test-secret", time.Hour)
	require.NoError(t, err)

	rec := requestWithToken(router, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
