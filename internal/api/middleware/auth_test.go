package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/trw5157-hue/garage/internal/core/domain"
)

const testSecret = "test-secret"

type stubResolver struct {
	users map[string]*domain.User
}

func (r *stubResolver) CurrentUser(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func signedToken(t *testing.T, secret, sub string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": domain.RoleMechanic,
		"exp":  time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func invokeAuth(t *testing.T, resolver *stubResolver, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	err := Auth(testSecret, resolver)(next)(c)
	return rec, err
}

func TestAuth_ValidToken(t *testing.T) {
	resolver := &stubResolver{users: map[string]*domain.User{
		"suresh": {Username: "suresh", Role: domain.RoleMechanic, FullName: "Suresh Babu"},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signedToken(t, testSecret, "suresh", time.Hour))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUser *domain.User
	next := func(c echo.Context) error {
		gotUser, _ = c.Get("user").(*domain.User)
		return c.NoContent(http.StatusOK)
	}
	if err := Auth(testSecret, resolver)(next)(c); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gotUser == nil || gotUser.Username != "suresh" {
		t.Fatalf("user not injected into context: %+v", gotUser)
	}
	if role, _ := c.Get("role").(string); role != domain.RoleMechanic {
		t.Fatalf("role not injected, got %q", role)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, &stubResolver{}, "")
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongScheme(t *testing.T) {
	_, err := invokeAuth(t, &stubResolver{}, "Basic abc123")
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_InvalidToken(t *testing.T) {
	_, err := invokeAuth(t, &stubResolver{}, "Bearer not-a-token")
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signedToken(t, "other-secret", "suresh", time.Hour)
	_, err := invokeAuth(t, &stubResolver{}, "Bearer "+token)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signedToken(t, testSecret, "suresh", -time.Hour)
	_, err := invokeAuth(t, &stubResolver{}, "Bearer "+token)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_SubjectNoLongerExists(t *testing.T) {
	// Valid token but the account was deleted after issuance.
	token := signedToken(t, testSecret, "ghost", time.Hour)
	_, err := invokeAuth(t, &stubResolver{users: map[string]*domain.User{}}, "Bearer "+token)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d", code, he.Code)
	}
}
