package access

type Outcome string

const (
	OutcomeAllow         Outcome = "allow"
	OutcomeLoginRedirect Outcome = "login"
	OutcomeFallback      Outcome = "fallback"
)

// Decision is a navigation command: either render (Allow) or send the user
// somewhere else. Evaluation never throws; denial is always a redirect.
type Decision struct {
	Outcome    Outcome
	RedirectTo string // empty when Outcome is OutcomeAllow
}

func (d Decision) Allowed() bool {
	return d.Outcome == OutcomeAllow
}
