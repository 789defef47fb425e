package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylewriter/internal/auth"
	"stylewriter/internal/config"
	"stylewriter/internal/domain"
	"stylewriter/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager(config.JWTConfig{
		Secret:            "test-secret",
		AccessTokenExpiry: time.Hour,
		Issuer:            "stylewriter",
	})
}

func protectedEngine(tokens *auth.TokenManager, roles ...domain.UserRole) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	handlers := []gin.HandlerFunc{middleware.AuthMiddleware(tokens)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": middleware.GetSubject(c), "role": middleware.GetRole(c)})
	})
	r.GET("/private", handlers...)
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := protectedEngine(newTokens())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing or invalid authorization header")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := protectedEngine(newTokens())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := newTokens()
	tok, err := tokens.Issue("analyst@example.com", "Analyst", domain.RoleEditor, 0)
	require.NoError(t, err)
	r := protectedEngine(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subject":"analyst@example.com","role":"editor"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequireRole(t *testing.T) {
	tokens := newTokens()
	r := protectedEngine(tokens, domain.RoleAdmin)

	editor, err := tokens.Issue("e", "", domain.RoleEditor, 0)
	require.NoError(t, err)
	admin, err := tokens.Issue("a", "", domain.RoleAdmin, 0)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+editor.AccessToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+admin.AccessToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS([]string{"http://localhost:8501"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:8501")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8501", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
