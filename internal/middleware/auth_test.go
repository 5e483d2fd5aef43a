package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"exam_coach_backend/internal/config"
	"exam_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "0123456789abcdef0123456789abcdef",
			ExpireTime: time.Hour,
		},
	}
}

func newAuthRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, util.GetUserFromContext(c).UserID)
	})
	r.GET("/open", TryAuthMiddleware(cfg), func(c *gin.Context) {
		if user := util.GetUserFromContext(c); user != nil {
			c.String(http.StatusOK, user.UserID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	return r
}

func TestAuthMiddlewareAcceptsIssuedToken(t *testing.T) {
	cfg := testConfig()
	router := newAuthRouter(cfg)

	token, err := util.GenerateJWT("user-42", cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())
}

func TestAuthMiddlewareAcceptsQueryToken(t *testing.T) {
	cfg := testConfig()
	router := newAuthRouter(cfg)

	token, err := util.GenerateJWT("user-42", cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())
}

func TestAuthMiddlewareRejects(t *testing.T) {
	cfg := testConfig()
	router := newAuthRouter(cfg)

	expired, err := util.GenerateJWT("user-42", cfg.JWT.Secret, -time.Hour)
	require.NoError(t, err)
	wrongSecret, err := util.GenerateJWT("user-42", "another-secret-another-secret-ab", time.Hour)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing token": "",
		"garbage":       "Bearer not-a-jwt",
		"expired":       "Bearer " + expired,
		"wrong secret":  "Bearer " + wrongSecret,
	} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestTryAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	router := newAuthRouter(cfg)

	token, err := util.GenerateJWT("user-42", cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	// A valid token attaches identity.
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())

	// No token and a bad token both pass through anonymously.
	for _, header := range []string{"", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	}
}
