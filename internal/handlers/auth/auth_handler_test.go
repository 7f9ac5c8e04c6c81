package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus-portal/internal/domain/auth"
	authHandler "campus-portal/internal/handlers/auth"
	"campus-portal/internal/middleware"
	xerrors "campus-portal/internal/pkg/errors"
	"campus-portal/internal/pkg/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubAPI struct {
	loginResp *auth.AuthResponse
	loginErr  error
	user      *auth.User
	userErr   error
}

func (a *stubAPI) Login(ctx context.Context, creds auth.Credentials) (*auth.AuthResponse, error) {
	return a.loginResp, a.loginErr
}

func (a *stubAPI) Logout(ctx context.Context) error { return nil }

func (a *stubAPI) CurrentUser(ctx context.Context) (*auth.User, error) {
	return a.user, a.userErr
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(api *stubAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	sm := middleware.NewSessionMiddleware(api, nil, false, zap.NewNop())
	r.Use(sm.Restore())

	h := authHandler.NewAuthHandler(zap.NewNop())
	r.POST("/portal/auth/login", h.Login)
	r.POST("/portal/auth/logout", middleware.Protect(), h.Logout)
	r.GET("/portal/auth/me", middleware.Protect(), h.Me)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func tokenCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == token.CookieName {
			return ck
		}
	}
	return nil
}

func TestLoginSetsCookieAndReturnsUser(t *testing.T) {
	api := &stubAPI{loginResp: &auth.AuthResponse{
		Token:    "T1",
		Type:     "Bearer",
		ID:       1,
		Username: "admin",
		Role:     auth.RoleAdmin,
	}}
	r := newRouter(api)

	req := httptest.NewRequest(http.MethodPost, "/portal/auth/login",
		strings.NewReader(`{"username":"admin","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	env := decode(t, w)
	if !env.Success {
		t.Fatalf("success = false: %s", env.Message)
	}
	var user auth.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.Username != "admin" || user.Role != auth.RoleAdmin {
		t.Fatalf("user = %+v", user)
	}

	ck := tokenCookie(w)
	if ck == nil {
		t.Fatal("no token cookie on the response")
	}
	if ck.Value != "T1" {
		t.Fatalf("cookie value = %q, want T1", ck.Value)
	}
	if !ck.HttpOnly {
		t.Fatal("token cookie must be HttpOnly")
	}
	if ck.MaxAge != int((token.DefaultTTL).Seconds()) {
		t.Fatalf("cookie MaxAge = %d, want %d", ck.MaxAge, int(token.DefaultTTL.Seconds()))
	}
}

func TestLoginBadCredentialsReturns401WithoutCookie(t *testing.T) {
	api := &stubAPI{loginErr: xerrors.ErrSessionExpired}
	r := newRouter(api)

	req := httptest.NewRequest(http.MethodPost, "/portal/auth/login",
		strings.NewReader(`{"username":"admin","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	env := decode(t, w)
	if env.Success {
		t.Fatal("success = true on a rejected login")
	}
	if env.Message != "invalid username or password" {
		t.Fatalf("message = %q", env.Message)
	}
	if ck := tokenCookie(w); ck != nil && ck.Value != "" {
		t.Fatalf("rejected login set a token cookie %q", ck.Value)
	}
}

func TestLoginMissingFieldsIsRejected(t *testing.T) {
	r := newRouter(&stubAPI{})

	req := httptest.NewRequest(http.MethodPost, "/portal/auth/login",
		strings.NewReader(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	api := &stubAPI{user: &auth.User{ID: 1, Username: "admin", Role: auth.RoleAdmin}}
	r := newRouter(api)

	req := httptest.NewRequest(http.MethodPost, "/portal/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: token.CookieName, Value: "T1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	ck := tokenCookie(w)
	if ck == nil || ck.Value != "" || ck.MaxAge >= 0 {
		t.Fatalf("logout did not clear the token cookie: %+v", ck)
	}
}

func TestMeReturnsRestoredIdentity(t *testing.T) {
	api := &stubAPI{user: &auth.User{ID: 1, Username: "admin", Role: auth.RoleAdmin}}
	r := newRouter(api)

	req := httptest.NewRequest(http.MethodGet, "/portal/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: token.CookieName, Value: "T1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	env := decode(t, w)
	var user auth.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.Username != "admin" {
		t.Fatalf("user = %+v", user)
	}
}
