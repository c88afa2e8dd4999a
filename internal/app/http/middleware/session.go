package middleware

import (
	"strings"

	"hr-portal/internal/domain/session"
	"hr-portal/internal/infra/sessions"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "hrportal.session"

// SessionCookie is the fallback token carrier for browser navigation
// requests that can't set an Authorization header.
const SessionCookie = "hr_session"

// SessionMiddleware resolves the request's session token through the store
// and attaches the session to the request context. It never rejects: routes
// that need a session declare that through RequireCapabilities. Every session
// it sees is handed to the lifecycle monitor, which re-arms the forced
// sign-out timer for that user.
func SessionMiddleware(store *sessions.Store, monitor *session.Monitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = cookie
			}
		}

		if s, err := store.Current(token); err == nil {
			c.Set(sessionContextKey, s)
			monitor.Watch(s)
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return strings.TrimSpace(token)
}

// CurrentSession returns the session attached by SessionMiddleware, or nil.
func CurrentSession(c *gin.Context) *session.Session {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	s, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return s
}
