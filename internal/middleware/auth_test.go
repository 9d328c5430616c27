package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pesona/config"
	"pesona/internal/auth"
	"pesona/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtConfig(expiry time.Duration) *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", Expiry: expiry, Issuer: "pesona-test"}
}

func protectedRouter(cfg *config.JWTConfig, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthRequired(cfg)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthRequired(t *testing.T) {
	cfg := jwtConfig(time.Hour)
	token, err := auth.GenerateToken(cfg, 7, "editor@pesona.local", domain.RoleEditor)
	require.NoError(t, err)

	expiredCfg := jwtConfig(-time.Hour)
	expired, err := auth.GenerateToken(expiredCfg, 7, "editor@pesona.local", domain.RoleEditor)
	require.NoError(t, err)

	tests := []struct {
		name       string
		cookie     string
		bearer     string
		wantStatus int
	}{
		{name: "no credentials", wantStatus: http.StatusUnauthorized},
		{name: "valid cookie", cookie: token, wantStatus: http.StatusOK},
		{name: "valid bearer fallback", bearer: token, wantStatus: http.StatusOK},
		{name: "garbage cookie", cookie: "not-a-token", wantStatus: http.StatusUnauthorized},
		{name: "expired token", cookie: expired, wantStatus: http.StatusUnauthorized},
		{name: "token signed with other secret", cookie: mustToken(t, "other-secret"), wantStatus: http.StatusUnauthorized},
	}
	r := protectedRouter(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func mustToken(t *testing.T, secret string) string {
	t.Helper()
	cfg := &config.JWTConfig{Secret: secret, Expiry: time.Hour, Issuer: "pesona-test"}
	token, err := auth.GenerateToken(cfg, 7, "editor@pesona.local", domain.RoleEditor)
	require.NoError(t, err)
	return token
}

func TestRequireRole(t *testing.T) {
	cfg := jwtConfig(time.Hour)
	editorToken, err := auth.GenerateToken(cfg, 1, "editor@pesona.local", domain.RoleEditor)
	require.NoError(t, err)
	adminToken, err := auth.GenerateToken(cfg, 2, "admin@pesona.local", domain.RoleAdmin)
	require.NoError(t, err)

	r := protectedRouter(cfg, domain.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: editorToken})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: adminToken})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
