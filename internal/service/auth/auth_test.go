package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-portal/internal/apiclient"
	"campus-portal/internal/domain/auth"
	xerrors "campus-portal/internal/pkg/errors"
	"campus-portal/internal/pkg/token"
	authsvc "campus-portal/internal/service/auth"

	"go.uber.org/zap"
)

func TestLoginPostsCredentials(t *testing.T) {
	var gotPath string
	var gotCreds auth.Credentials
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotCreds); err != nil {
			t.Errorf("decode credentials: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(auth.AuthResponse{
			Token:    "T1",
			Type:     "Bearer",
			ID:       1,
			Username: "admin",
			Role:     auth.RoleAdmin,
		})
	}))
	defer srv.Close()

	svc := authsvc.NewService(apiclient.New(srv.URL), zap.NewNop())
	resp, err := svc.Login(context.Background(), auth.Credentials{Username: "admin", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if gotPath != "POST /api/auth/login" {
		t.Fatalf("upstream saw %q", gotPath)
	}
	if gotCreds.Username != "admin" || gotCreds.Password != "pw" {
		t.Fatalf("upstream saw credentials %+v", gotCreds)
	}
	if resp.Token != "T1" || resp.User().Role != auth.RoleAdmin {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestLoginRejectionSurfacesAsSessionExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := authsvc.NewService(apiclient.New(srv.URL), zap.NewNop())
	_, err := svc.Login(context.Background(), auth.Credentials{Username: "admin", Password: "bad"})
	if !errors.Is(err, xerrors.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
}

func TestCurrentUserSendsBearer(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.Method + " " + r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(auth.User{ID: 1, Username: "admin", Role: auth.RoleAdmin})
	}))
	defer srv.Close()

	tokens := token.NewMemoryStore()
	tokens.Set("T1", time.Hour)
	svc := authsvc.NewService(apiclient.New(srv.URL, apiclient.WithTokens(tokens)), zap.NewNop())

	user, err := svc.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if gotPath != "GET /api/auth/me" {
		t.Fatalf("upstream saw %q", gotPath)
	}
	if gotAuth != "Bearer T1" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if user.Username != "admin" {
		t.Fatalf("user = %+v", user)
	}
}

func TestLogoutPostsToUpstream(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := authsvc.NewService(apiclient.New(srv.URL), zap.NewNop())
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if gotPath != "POST /api/auth/logout" {
		t.Fatalf("upstream saw %q", gotPath)
	}
}
