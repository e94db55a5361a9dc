package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jobra/portal_backend/config"
	"github.com/jobra/portal_backend/internal/catalog"
)

// memorySessionStore is a map-backed SessionStore for tests. TTLs are
// recorded but not enforced.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]catalog.User
	lastTTL  time.Duration
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]catalog.User)}
}

func (m *memorySessionStore) Save(_ context.Context, token string, u catalog.User, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = u
	m.lastTTL = ttl
	return nil
}

func (m *memorySessionStore) Load(_ context.Context, token string) (catalog.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.sessions[token]
	if !ok {
		return catalog.User{}, ErrSessionNotFound
	}
	return u, nil
}

func (m *memorySessionStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func newTestService() (Service, *memorySessionStore) {
	sessions := newMemorySessionStore()
	cfg := &config.Config{}
	cfg.Session.TTLMinutes = 30
	return New(catalog.New(), sessions, cfg), sessions
}

func TestLoginSuccess(t *testing.T) {
	svc, sessions := newTestService()

	sess, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@jobra.com",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if sess.Token == "" {
		t.Fatal("expected a non-empty session token")
	}
	if sess.User.Role != catalog.RoleAdmin {
		t.Errorf("role = %q, want %q", sess.User.Role, catalog.RoleAdmin)
	}
	if sess.User.Password != "" {
		t.Error("session user must not carry the password")
	}

	// The stored principal must round-trip through the session store.
	got, err := svc.Principal(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("Principal returned error: %v", err)
	}
	if got.ID != sess.User.ID || got.Role != sess.User.Role {
		t.Errorf("Principal = (%d, %q), want (%d, %q)", got.ID, got.Role, sess.User.ID, sess.User.Role)
	}
	if sessions.lastTTL != 30*time.Minute {
		t.Errorf("session TTL = %v, want %v", sessions.lastTTL, 30*time.Minute)
	}
}

func TestLoginFailure(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@jobra.com", "nope"},
		{"unknown email", "ghost@jobra.com", "admin123"},
		{"empty credentials", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), LoginRequest{Email: tt.email, Password: tt.password})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
			// Every failure mode surfaces the same message.
			if err.Error() != "Invalid email or password" {
				t.Errorf("message = %q, want %q", err.Error(), "Invalid email or password")
			}
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{
			"missing name",
			RegisterRequest{Email: "a@jobra.com", Password: "pw", Role: "patient"},
			ErrMissingFields,
		},
		{
			"missing password",
			RegisterRequest{Name: "A", Email: "a@jobra.com", Role: "patient"},
			ErrMissingFields,
		},
		{
			"unknown role",
			RegisterRequest{Name: "A", Email: "a@jobra.com", Password: "pw", Role: "intern"},
			ErrInvalidRole,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	svc, sessions := newTestService()

	created, err := svc.Register(context.Background(), RegisterRequest{
		Name:           "New Patient",
		Email:          "new.patient@jobra.com",
		Password:       "patient123",
		Role:           "patient",
		Phone:          "+1-555-0000",
		Age:            29,
		Gender:         "Female",
		MedicalHistory: "None",
		Allergies:      "None",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if created.ID != 13 {
		t.Errorf("ID = %d, want 13", created.ID)
	}
	if created.Patient == nil || created.Patient.Age != 29 {
		t.Errorf("patient profile not preserved: %+v", created.Patient)
	}
	if len(sessions.sessions) != 0 {
		t.Error("registration must not create a session")
	}

	// The new account can log in afterwards.
	if _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "new.patient@jobra.com",
		Password: "patient123",
	}); err != nil {
		t.Fatalf("login after register: %v", err)
	}
}

func TestLogout(t *testing.T) {
	svc, _ := newTestService()

	sess, err := svc.Login(context.Background(), LoginRequest{
		Email:    "patient1@jobra.com",
		Password: "patient123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := svc.Logout(context.Background(), sess.Token); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := svc.Principal(context.Background(), sess.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Principal after logout: err = %v, want ErrSessionNotFound", err)
	}

	// Logging out an already-dead token is not an error.
	if err := svc.Logout(context.Background(), sess.Token); err != nil {
		t.Fatalf("second Logout returned error: %v", err)
	}
}

func TestPrincipalEmptyToken(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Principal(context.Background(), ""); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}
