// internal/service/auth/auth.go
package auth

import (
	"context"

	"campus-portal/internal/apiclient"
	"campus-portal/internal/domain/auth"

	"go.uber.org/zap"
)

// Service is the thin translation layer between the upstream auth endpoints
// and the session model. No retries, no fallback: any failure propagates.
type Service struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewService(client *apiclient.Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Login posts credentials and returns the composite token+identity payload.
func (s *Service) Login(ctx context.Context, creds auth.Credentials) (*auth.AuthResponse, error) {
	var resp auth.AuthResponse
	if err := s.client.Post(ctx, "/api/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout notifies the upstream. Purely advisory; the caller clears local
// state regardless of the outcome.
func (s *Service) Logout(ctx context.Context) error {
	return s.client.Post(ctx, "/api/auth/logout", nil, nil)
}

// CurrentUser fetches the identity for the currently attached token.
func (s *Service) CurrentUser(ctx context.Context) (*auth.User, error) {
	var user auth.User
	if err := s.client.Get(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
