package middleware

import (
	"net/http"

	"hr-portal/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// RequireCapabilities gates a route group behind a permission list. Denial is
// navigation, not an error body: unauthenticated users bounce to the login
// route with the current path as callbackUrl, under-permissioned users bounce
// to the fallback route (empty fallback means the default self-service area).
//
// The handler chain is aborted before any protected handler runs, so nothing
// of the protected response leaks ahead of the redirect.
func RequireCapabilities(fallback string, perms ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		decision := access.Evaluate(s, perms, c.Request.URL.RequestURI(), fallback)

		if decision.Allowed() {
			c.Next()
			return
		}

		// A fallback route gated by permissions the user lacks would bounce
		// forever; break the loop with a plain 403 instead.
		if c.Request.URL.Path == decision.RedirectTo {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Redirect(http.StatusFound, decision.RedirectTo)
		c.Abort()
	}
}
