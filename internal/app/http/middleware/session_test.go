package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-portal/internal/domain/session"
	"hr-portal/internal/infra/sessions"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRouter(t *testing.T, store *sessions.Store) (*gin.Engine, *session.Monitor) {
	t.Helper()
	monitor := session.NewMonitor(store.SignOut)
	t.Cleanup(monitor.Close)

	r := gin.New()
	r.Use(SessionMiddleware(store, monitor))
	r.GET("/whoami", func(c *gin.Context) {
		s := CurrentSession(c)
		if s == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": s.Identity.UserID})
	})
	return r, monitor
}

func TestSessionMiddleware_AttachesSessionFromBearerToken(t *testing.T) {
	store := sessions.NewStore("secret")
	r, _ := sessionRouter(t, store)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-7",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.JSONEq(t, `{"user":"u-7"}`, w.Body.String())
}

func TestSessionMiddleware_CookieFallback(t *testing.T) {
	store := sessions.NewStore("secret")
	r, _ := sessionRouter(t, store)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u-8"})
	signed, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signed})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.JSONEq(t, `{"user":"u-8"}`, w.Body.String())
}

func TestSessionMiddleware_NoTokenNoSession(t *testing.T) {
	store := sessions.NewStore("secret")
	r, _ := sessionRouter(t, store)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"malformed bearer", "Token abc"},
		{"bearer with junk", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.JSONEq(t, `{"user":null}`, w.Body.String())
		})
	}
}
