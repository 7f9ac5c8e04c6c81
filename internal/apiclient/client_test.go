package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	xerrors "campus-portal/internal/pkg/errors"
	"campus-portal/internal/pkg/requestid"
	"campus-portal/internal/pkg/token"
)

func newTokenStore(tok string) *token.MemoryStore {
	s := token.NewMemoryStore()
	if tok != "" {
		s.Set(tok, time.Hour)
	}
	return s
}

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL, WithTokens(newTokenStore("T1")))
	if err := client.Get(context.Background(), "/api/auth/me", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer T1" {
		t.Fatalf("Authorization = %q, want Bearer T1", gotAuth)
	}
}

func TestNoTokenMeansNoAuthorizationHeader(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL, WithTokens(newTokenStore("")))
	if err := client.Get(context.Background(), "/api/courses", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hasAuth {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
}

func TestUnauthorizedClearsTokenAndReturnsSessionExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tokens := newTokenStore("T1")
	client := New(srv.URL, WithTokens(tokens))

	err := client.Get(context.Background(), "/api/results", nil)
	if !errors.Is(err, xerrors.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if _, ok := tokens.Get(); ok {
		t.Fatal("token survived a 401")
	}
}

func TestConcurrentUnauthorizedClearsIdempotently(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tokens := newTokenStore("T1")
	client := New(srv.URL, WithTokens(tokens))

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = client.Get(context.Background(), "/api/results", nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if !errors.Is(err, xerrors.ErrSessionExpired) {
			t.Fatalf("request %d: err = %v, want ErrSessionExpired", i, err)
		}
	}
	if _, ok := tokens.Get(); ok {
		t.Fatal("token survived concurrent 401s")
	}
}

func TestForbiddenKeepsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	tokens := newTokenStore("T1")
	client := New(srv.URL, WithTokens(tokens))

	err := client.Get(context.Background(), "/api/admin/statistics", nil)
	if !errors.Is(err, xerrors.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if tok, ok := tokens.Get(); !ok || tok != "T1" {
		t.Fatal("a 403 must not clear the session token")
	}
}

func TestUpstreamErrorCarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"course is full"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	err := client.Post(context.Background(), "/api/student/courses/7/enroll", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Fatalf("status = %d, want 409", apiErr.Status)
	}
	if apiErr.Message != "course is full" {
		t.Fatalf("message = %q, want %q", apiErr.Message, "course is full")
	}
}

func TestDecodesResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"username":"admin"}`))
	}))
	defer srv.Close()

	var out struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	client := New(srv.URL)
	if err := client.Get(context.Background(), "/api/auth/me", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.ID != 7 || out.Username != "admin" {
		t.Fatalf("decoded %+v", out)
	}
}

func TestContextStoreOverridesDefault(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL, WithTokens(newTokenStore("default")))
	ctx := token.NewContext(context.Background(), newTokenStore("scoped"))
	if err := client.Get(ctx, "/api/auth/me", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer scoped" {
		t.Fatalf("Authorization = %q, want the request-scoped token", gotAuth)
	}
}

func TestUnauthorizedClearsContextStoreNotDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	defaults := newTokenStore("default")
	scoped := newTokenStore("scoped")
	client := New(srv.URL, WithTokens(defaults))

	ctx := token.NewContext(context.Background(), scoped)
	err := client.Get(ctx, "/api/auth/me", nil)
	if !errors.Is(err, xerrors.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if _, ok := scoped.Get(); ok {
		t.Fatal("request-scoped token survived a 401")
	}
	if tok, ok := defaults.Get(); !ok || tok != "default" {
		t.Fatal("default store must stay untouched when a scoped store handled the 401")
	}
}

func TestCustomAuthFailureHandler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var fired atomic.Int32
	tokens := newTokenStore("T1")
	client := New(srv.URL,
		WithTokens(tokens),
		WithOnAuthFailure(func(ctx context.Context) { fired.Add(1) }),
	)

	err := client.Get(context.Background(), "/api/auth/me", nil)
	if !errors.Is(err, xerrors.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if fired.Load() != 1 {
		t.Fatalf("auth failure handler fired %d times, want 1", fired.Load())
	}
	// The custom policy replaces the default removal entirely.
	if _, ok := tokens.Get(); !ok {
		t.Fatal("custom handler should own the clearing decision")
	}
}

func TestRequestIDForwarded(t *testing.T) {
	var gotRID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRID = r.Header.Get(requestid.Header)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL)
	ctx := requestid.NewContext(context.Background(), "rid-123")
	if err := client.Get(ctx, "/api/courses", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotRID != "rid-123" {
		t.Fatalf("request id = %q, want rid-123", gotRID)
	}
}

func TestRequestInterceptorRuns(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Portal")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL, WithRequestInterceptor(func(ctx context.Context, req *http.Request) error {
		req.Header.Set("X-Portal", "campus")
		return nil
	}))
	if err := client.Get(context.Background(), "/api/courses", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotHeader != "campus" {
		t.Fatalf("X-Portal = %q, want campus", gotHeader)
	}
}
