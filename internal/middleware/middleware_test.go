package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/traineme-api/internal/auth"
	"github.com/BruksfildServices01/traineme-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(tokens *auth.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		id := Identity(c)
		c.JSON(http.StatusOK, gin.H{"id": id.UserID, "role": id.Role})
	})
	r.GET("/trainer-only", AuthMiddleware(tokens), RequireRole(models.RoleTrainer), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	other := auth.NewTokenIssuer("other-secret", time.Hour)
	r := newRouter(tokens)

	good, _, err := tokens.Issue(7, models.RoleUser)
	require.NoError(t, err)
	forged, _, err := other.Issue(7, models.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"wrong key", "Bearer " + forged, http.StatusUnauthorized},
		{"valid", "Bearer " + good, http.StatusOK},
		{"lowercase scheme", "bearer " + good, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"role":"USER"}`, w.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	r := newRouter(tokens)

	for role, want := range map[models.Role]int{
		models.RoleUser:    http.StatusForbidden,
		models.RoleTrainer: http.StatusNoContent,
	} {
		token, _, err := tokens.Issue(1, role)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/trainer-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, want, w.Code, role)
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(auth.NewTokenIssuer("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
}

func TestRedisMiddlewares_DisabledWithoutClient(t *testing.T) {
	r := gin.New()
	r.GET("/trainers", RateLimit(nil, "auth", 1, time.Minute), ResponseCache(nil, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trainers", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get(HeaderCache))
	}
}

func TestCacheKey_SortsQuery(t *testing.T) {
	a := httptest.NewRequest(http.MethodGet, "/api/trainers?specialty=yoga&page=2", nil)
	b := httptest.NewRequest(http.MethodGet, "/api/trainers?page=2&specialty=yoga", nil)

	assert.Equal(t, CacheKey(a), CacheKey(b))
	assert.Equal(t, "cache:/api/trainers?page=2&specialty=yoga", CacheKey(a))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
