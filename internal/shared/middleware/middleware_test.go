package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"busline/internal/shared/config"
	"busline/internal/shared/session"
	"busline/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestEngine(cfg *config.Config, handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	chain := append([]gin.HandlerFunc{JWTAuthWithConfig(cfg)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		sc, err := CurrentSession(c)
		if err != nil {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": sc.UserID.String(), "sid": sc.SessionID, "role": string(sc.Role)})
	})
	engine.GET("/protected", chain...)
	return engine
}

func TestJWTAuth(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	userID := uuid.New()

	valid := jwt.MapClaims{
		"user_id": userID.String(),
		"email":   "rider@example.com",
		"role":    "USER",
		"type":    "access",
		"sid":     "sess-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "bad signature", header: "Bearer " + signToken(t, "other", valid), wantStatus: http.StatusUnauthorized},
		{
			name: "refresh token rejected",
			header: "Bearer " + signToken(t, "test-secret", jwt.MapClaims{
				"user_id": userID.String(), "role": "USER", "type": "refresh", "sid": "sess-1",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "no session id",
			header: "Bearer " + signToken(t, "test-secret", jwt.MapClaims{
				"user_id": userID.String(), "role": "USER", "type": "access",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{name: "valid", header: "Bearer " + signToken(t, "test-secret", valid), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(cfg)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"`+userID.String()+`","sid":"sess-1","role":"USER"}`, rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	engine := gin.New()
	engine.GET("/admin", func(c *gin.Context) {
		role := users.Role(c.GetHeader("X-Test-Role"))
		if role != "" {
			SetSession(c, session.Context{UserID: uuid.New(), SessionID: "s", Role: role})
		}
		c.Next()
	}, RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	cases := map[string]int{
		"":      http.StatusUnauthorized,
		"USER":  http.StatusForbidden,
		"ADMIN": http.StatusNoContent,
	}
	for role, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("X-Test-Role", role)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, "role %q", role)
	}
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
