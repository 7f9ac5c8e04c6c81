// Package session is the single source of truth for authentication state.
// A Store is an explicit, injectable object: the portal builds one per
// request bound to the browser cookie, embedded consumers build one around
// an in-memory token store.
package session

import (
	"context"

	"campus-portal/internal/domain/auth"
)

// Session is the read model exposed to the rest of the application. User is
// present only if Token is present; once Loading has settled there is no
// partial resting state.
type Session struct {
	Token   string
	User    *auth.User
	Loading bool
}

// IsAuthenticated reports whether a validated identity is attached.
func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// AuthAPI is the slice of the auth service the store depends on.
type AuthAPI interface {
	Login(ctx context.Context, creds auth.Credentials) (*auth.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*auth.User, error)
}
