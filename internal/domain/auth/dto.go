// internal/domain/auth/dto.go
package auth

// Role is the coarse access level the upstream API assigns to an account.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleInstructor Role = "INSTRUCTOR"
	RoleStudent    Role = "STUDENT"
)

// Valid reports whether the role is one the portal knows how to gate on.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

// User is the identity attached to a session. Immutable once fetched; a new
// login replaces it wholesale.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// Credentials is the login request body. Never stored beyond the request.
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the composite login payload from the upstream API: a bearer
// token plus the user fields. The session store splits it into token and
// identity.
type AuthResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// User extracts the identity half of the payload.
func (r *AuthResponse) User() *User {
	return &User{
		ID:        r.ID,
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Role:      r.Role,
	}
}
