package integrations

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes the workspace integration asks Google for: identity plus calendar
// and Gmail read/send. Fixed list; the consent screen shows all of them.
var googleScopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/gmail.send",
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Handler builds the Google authorization URL for the workspace integration
// flow. Only the redirect URL is constructed here; the callback exchange is
// handled by the identity service, not this gateway.
type Handler struct {
	oauth *oauth2.Config
}

func NewHandler(cfg GoogleConfig) *Handler {
	return &Handler{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       googleScopes,
			Endpoint:     google.Endpoint,
		},
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// AuthURL builds the consent-prompted offline-access authorization URL.
// Offline access is what gets us a refresh token for the calendar/Gmail
// sync jobs; prompt=consent makes Google re-issue one even for returning
// users.
func (h *Handler) AuthURL(state string) string {
	return h.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// GET /api/integrations/google/url
func (h *Handler) GoogleAuthURL(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	// state travels in an HttpOnly cookie so the callback handler (owned by
	// the identity service) can verify it
	c.SetCookie(
		"oauth_state",
		state,
		300, // 5 minutes
		"/",
		"",    // domain (set in prod)
		false, // secure (true in prod HTTPS)
		true,  // httpOnly
	)

	c.JSON(http.StatusOK, gin.H{"url": h.AuthURL(state)})
}
