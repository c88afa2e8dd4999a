package auth

import (
	"net/http"

	"hr-portal/internal/app/http/middleware"
	"hr-portal/internal/domain/session"
	"hr-portal/internal/infra/sessions"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store   *sessions.Store
	monitor *session.Monitor
}

func NewHandler(store *sessions.Store, monitor *session.Monitor) *Handler {
	return &Handler{store: store, monitor: monitor}
}

// GET /api/me
func (h *Handler) Me(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if s == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}

	perms := s.Permissions
	if perms == nil {
		perms = []string{}
	}

	resp := MeResponse{
		User: UserDTO{
			ID:       s.Identity.UserID,
			Email:    s.Identity.Email,
			Name:     s.Identity.Name,
			TenantID: s.Identity.TenantID,
		},
		Permissions: perms,
	}
	if !s.IssuedAt.IsZero() {
		iat := s.IssuedAt.Unix()
		resp.Token.IssuedAt = &iat
	}
	if s.HasExpiryMetadata() {
		left := s.ExpiresIn
		resp.Token.ExpiresIn = &left
	}

	c.JSON(http.StatusOK, resp)
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if s == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Already signed out"})
		return
	}

	h.store.SignOut(s.Token)
	h.monitor.Forget(s.Identity.UserID)

	// Expire the browser cookie so navigation requests stop carrying the
	// revoked token.
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
