package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-tasks/app/middleware"
	"github.com/vibast-solutions/ms-go-tasks/app/service"
	"github.com/vibast-solutions/ms-go-tasks/app/token"
	"github.com/vibast-solutions/ms-go-tasks/config"

	"github.com/labstack/echo/v4"
)

const apiBase = "/api/v1/"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "access-secret",
		JWTAccessTokenTTL: 2 * time.Hour,
	}
}

func newAuthHandler(t *testing.T) echo.HandlerFunc {
	t.Helper()
	authService := service.NewAuthService(nil, nil, nil, testConfig())
	m := middleware.NewAuthMiddleware(authService, apiBase)
	return m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func invoke(t *testing.T, handler echo.HandlerFunc, path, accessToken string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if accessToken != "" {
		req.Header.Set(middleware.AccessTokenHeader, accessToken)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, c
}

func TestAuthenticate_PublicRoutes(t *testing.T) {
	handler := newAuthHandler(t)

	paths := []string{
		"/",
		"/api/documentation",
		"/metrics",
		"/ws",
		"/api/v1/auth/login",
		"/api/v1/auth/register",
		"/api/v1/auth/account/confirm",
		"/api/v1/auth/password/forgot",
		"/api/v1/auth/password/reset",
		"/api/v1/token/refresh",
	}
	for _, path := range paths {
		rec, _ := invoke(t, handler, path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("expected %s to pass without a token, got %d", path, rec.Code)
		}
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	handler := newAuthHandler(t)

	rec, _ := invoke(t, handler, "/api/v1/tasks", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	handler := newAuthHandler(t)

	rec, _ := invoke(t, handler, "/api/v1/tasks", "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a malformed token, got %d", rec.Code)
	}
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	handler := newAuthHandler(t)

	forged, err := token.Issue(7, "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	rec, _ := invoke(t, handler, "/api/v1/tasks", forged)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a token signed with another secret, got %d", rec.Code)
	}
}

func TestAuthenticate_ZeroSubject(t *testing.T) {
	handler := newAuthHandler(t)

	// Validly signed but without a usable user id claim.
	anonymous, err := token.Issue(0, "access-secret", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	rec, _ := invoke(t, handler, "/api/v1/tasks", anonymous)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a zero subject, got %d", rec.Code)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	handler := newAuthHandler(t)

	accessToken, err := token.Issue(7, "access-secret", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	rec, c := invoke(t, handler, "/api/v1/tasks", accessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a valid token, got %d", rec.Code)
	}

	id, ok := middleware.UserID(c)
	if !ok {
		t.Fatal("expected user id in the request context")
	}
	if id != 7 {
		t.Errorf("expected user id 7, got %d", id)
	}
}
