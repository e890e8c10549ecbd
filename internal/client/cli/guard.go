package cli

import "github.com/jonmaccc4/BookNest-library/internal/client/models"

// Decision is the outcome of an access check for a protected view.
type Decision int

const (
	// DecisionAllow grants access to the requested view.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin sends an anonymous user to the login prompt.
	DecisionRedirectLogin
	// DecisionRedirectHome sends a logged-in non-admin away from admin views.
	DecisionRedirectHome
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect:login"
	case DecisionRedirectHome:
		return "redirect:home"
	default:
		return "unknown"
	}
}

// Authorize decides whether the current session may enter a view. It is a
// pure function of the session snapshot: no I/O, no freshness check. A
// missing token redirects to login; a non-admin asking for an admin view is
// sent home instead.
func Authorize(s models.Session, requireAdmin bool) Decision {
	if !s.LoggedIn() {
		return DecisionRedirectLogin
	}
	if requireAdmin && !s.IsAdmin {
		return DecisionRedirectHome
	}
	return DecisionAllow
}
