package guard

import (
	"testing"

	"campus-portal/internal/domain/auth"
	"campus-portal/internal/session"
)

func authed(role auth.Role) session.Session {
	return session.Session{
		Token: "T1",
		User:  &auth.User{ID: 1, Username: "u1", Role: role},
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		sess       session.Session
		required   []auth.Role
		wantState  State
		wantTarget string
	}{
		{
			name:      "loading session is pending",
			sess:      session.Session{Loading: true},
			required:  []auth.Role{auth.RoleAdmin},
			wantState: StatePending,
		},
		{
			name:       "unauthenticated goes to login",
			sess:       session.Session{},
			required:   nil,
			wantState:  StateRedirect,
			wantTarget: LoginPath,
		},
		{
			name:       "unauthenticated goes to login even with roles required",
			sess:       session.Session{},
			required:   []auth.Role{auth.RoleAdmin},
			wantState:  StateRedirect,
			wantTarget: LoginPath,
		},
		{
			name:      "nil role set admits any authenticated user",
			sess:      authed(auth.RoleStudent),
			required:  nil,
			wantState: StateAllow,
		},
		{
			name:      "empty role set admits any authenticated user",
			sess:      authed(auth.RoleInstructor),
			required:  []auth.Role{},
			wantState: StateAllow,
		},
		{
			name:      "matching role is allowed",
			sess:      authed(auth.RoleAdmin),
			required:  []auth.Role{auth.RoleAdmin},
			wantState: StateAllow,
		},
		{
			name:      "role matched anywhere in the set",
			sess:      authed(auth.RoleInstructor),
			required:  []auth.Role{auth.RoleAdmin, auth.RoleInstructor},
			wantState: StateAllow,
		},
		{
			name:       "student on an admin route goes to unauthorized",
			sess:       authed(auth.RoleStudent),
			required:   []auth.Role{auth.RoleAdmin},
			wantState:  StateRedirect,
			wantTarget: UnauthorizedPath,
		},
		{
			name:       "instructor on a student route goes to unauthorized",
			sess:       authed(auth.RoleInstructor),
			required:   []auth.Role{auth.RoleStudent},
			wantState:  StateRedirect,
			wantTarget: UnauthorizedPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.sess, tt.required)
			if got.State != tt.wantState {
				t.Fatalf("state = %v, want %v", got.State, tt.wantState)
			}
			if got.Target != tt.wantTarget {
				t.Fatalf("target = %q, want %q", got.Target, tt.wantTarget)
			}
		})
	}
}
