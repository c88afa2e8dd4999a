package session

import "time"

// Identity is the authenticated user behind a session. Issued by the
// identity service; read-only here.
type Identity struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	TenantID string `json:"tenant_id"`
}

// Session is the gateway's view of an identity-service session: who the user
// is, which permission strings they hold, and the token lifetime metadata.
type Session struct {
	Token       string
	Identity    Identity
	Permissions []string

	// Token metadata. ExpiresIn is the relative lifetime in seconds the
	// identity service declared when the token was read; zero means the
	// token carried no expiry and the lifecycle monitor must not arm.
	IssuedAt  time.Time
	ExpiresIn int64
}

// Has reports whether the session carries a single permission string.
func (s *Session) Has(perm string) bool {
	for _, p := range s.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// HasAll is the conjunctive permission check: every required permission must
// be present. An empty requirement list always passes.
func (s *Session) HasAll(required []string) bool {
	for _, perm := range required {
		if !s.Has(perm) {
			return false
		}
	}
	return true
}

// HasExpiryMetadata reports whether the token declared a lifetime at all.
func (s *Session) HasExpiryMetadata() bool {
	return s.ExpiresIn > 0
}
