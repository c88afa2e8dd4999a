package access

import (
	"net/url"

	"hr-portal/internal/domain/session"
)

const (
	LoginRoute = "/login"

	// Restricted self-service area every authenticated user may reach.
	// Used when a view denies access and no explicit fallback was given.
	DefaultFallbackRoute = "/self-service"
)

// Evaluate decides whether a session may see a view that requires the given
// permission list. The check is conjunctive over the session's permission set
// and short-circuits on the first missing permission; an empty requirement
// list always passes. No result is cached — callers re-evaluate per request.
//
//   - no session           -> redirect to login, carrying the current path back
//   - missing permission   -> redirect to the fallback route
//   - otherwise            -> allow
func Evaluate(s *session.Session, required []string, currentPath string, fallback string) Decision {
	if s == nil {
		return Decision{
			Outcome:    OutcomeLoginRedirect,
			RedirectTo: LoginRoute + "?callbackUrl=" + url.QueryEscape(currentPath),
		}
	}

	if !s.HasAll(required) {
		if fallback == "" {
			fallback = DefaultFallbackRoute
		}
		return Decision{
			Outcome:    OutcomeFallback,
			RedirectTo: fallback,
		}
	}

	return Decision{Outcome: OutcomeAllow}
}
