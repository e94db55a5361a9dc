package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jobra/portal_backend/config"
	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/internal/service/auth"
)

// stubSessionStore answers every Load with a fixed user or a fixed error.
type stubSessionStore struct {
	user catalog.User
	err  error
}

func (s *stubSessionStore) Save(ctx context.Context, token string, u catalog.User, ttl time.Duration) error {
	return nil
}

func (s *stubSessionStore) Load(ctx context.Context, token string) (catalog.User, error) {
	if s.err != nil {
		return catalog.User{}, s.err
	}
	return s.user, nil
}

func (s *stubSessionStore) Delete(ctx context.Context, token string) error { return nil }

func newSessionApp(t *testing.T, sessions auth.SessionStore) *fiber.App {
	t.Helper()

	svc := auth.New(catalog.New(), sessions, &config.Config{})

	app := fiber.New()
	app.Use(Session(svc))
	app.Get("/whoami", func(c fiber.Ctx) error {
		p, ok := PrincipalFromFiber(c)
		if !ok {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"id": p.ID, "role": p.Role})
	})
	return app
}

func whoami(t *testing.T, app *fiber.App, token string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.StatusCode, body
}

func TestSessionResolvesPrincipal(t *testing.T) {
	sessions := &stubSessionStore{user: catalog.User{ID: 7, Role: catalog.RolePatient}}
	app := newSessionApp(t, sessions)

	status, body := whoami(t, app, "token-7")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["id"] != float64(7) || body["role"] != "patient" {
		t.Errorf("principal = %v, want id 7 role patient", body)
	}
}

func TestSessionUnknownTokenIsAnonymous(t *testing.T) {
	sessions := &stubSessionStore{err: auth.ErrSessionNotFound}
	app := newSessionApp(t, sessions)

	status, body := whoami(t, app, "expired-token")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["anonymous"] != true {
		t.Errorf("body = %v, want anonymous", body)
	}
}

func TestSessionStoreFailurePassesThrough(t *testing.T) {
	// A broken session backend must not turn into a hard failure on the
	// request path; the request proceeds unauthenticated.
	sessions := &stubSessionStore{err: errors.New("dial tcp: connection refused")}
	app := newSessionApp(t, sessions)

	status, body := whoami(t, app, "some-token")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["anonymous"] != true {
		t.Errorf("body = %v, want anonymous", body)
	}
}

func TestSessionToken(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/t", func(c fiber.Ctx) error {
		got = SessionToken(c)
		return c.SendStatus(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"bearer header", "Bearer abc123", "", "abc123"},
		{"cookie fallback", "", "cookie-token", "cookie-token"},
		{"header wins over cookie", "Bearer abc123", "cookie-token", "abc123"},
		{"malformed header falls back", "abc123", "cookie-token", "cookie-token"},
		{"nothing", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/t", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			if _, err := app.Test(req); err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if got != tt.want {
				t.Errorf("SessionToken = %q, want %q", got, tt.want)
			}
		})
	}
}
