// Package guard decides whether a session may view a protected screen. The
// evaluator is pure: it holds no state and performs no side effects, so the
// same policy serves the HTTP middleware and embedded consumers alike.
package guard

import (
	"campus-portal/internal/domain/auth"
	"campus-portal/internal/session"
)

// Navigation targets for the redirect outcomes.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

type State int

const (
	// StatePending means the session restore has not settled yet: render a
	// neutral indicator, perform no redirect.
	StatePending State = iota
	// StateRedirect means the protected content must not render; navigate to
	// Decision.Target instead.
	StateRedirect
	// StateAllow means the protected content may render.
	StateAllow
)

// Decision is the outcome of one policy evaluation.
type Decision struct {
	State  State
	Target string
}

// Evaluate applies the route policy to a session snapshot. A nil or empty
// required-role set admits any authenticated user. Unauthenticated users are
// always sent to login, regardless of the required roles; authenticated users
// whose role is not in the set are sent to the unauthorized page.
func Evaluate(sess session.Session, required []auth.Role) Decision {
	if sess.Loading {
		return Decision{State: StatePending}
	}
	if !sess.IsAuthenticated() {
		return Decision{State: StateRedirect, Target: LoginPath}
	}
	if len(required) == 0 {
		return Decision{State: StateAllow}
	}
	for _, role := range required {
		if sess.User.Role == role {
			return Decision{State: StateAllow}
		}
	}
	return Decision{State: StateRedirect, Target: UnauthorizedPath}
}
