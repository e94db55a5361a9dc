// Package auth implements login, registration and session lifecycle over the
// in-memory principal catalog. Sessions are opaque tokens mapped to a
// credential-stripped user record in the session store.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobra/portal_backend/config"
	"github.com/jobra/portal_backend/internal/catalog"
)

const defaultSessionTTL = 60 * time.Minute

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest mirrors the registration form: the common fields plus the
// role-specific ones. Fields for the other role are ignored.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`

	// Doctor fields.
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`

	// Patient fields.
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medicalHistory"`
	Allergies      string `json:"allergies"`
}

// Session is the result of a successful login: the opaque token the client
// presents on later requests, and the sanitized principal.
type Session struct {
	Token string       `json:"token"`
	User  catalog.User `json:"user"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Session, error)
	Register(ctx context.Context, req RegisterRequest) (catalog.User, error)
	Logout(ctx context.Context, token string) error
	// Principal resolves a session token back to the logged-in user.
	Principal(ctx context.Context, token string) (catalog.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	store    *catalog.Store
	sessions SessionStore
	ttl      time.Duration
}

func New(store *catalog.Store, sessions SessionStore, cfg *config.Config) Service {
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &authService{
		store:    store,
		sessions: sessions,
		ttl:      ttl,
	}
}

// Login checks the credentials against the catalog and, on a match, mints a
// session token and persists the sanitized user under it. Any miss returns
// ErrInvalidCredentials; callers never learn whether the email exists.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	email := strings.TrimSpace(req.Email)
	u, ok := s.store.Authenticate(email, req.Password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token := uuid.Must(uuid.NewV7()).String()
	if err := s.sessions.Save(ctx, token, u, s.ttl); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	slog.Info("user logged in", "user_id", u.ID, "role", u.Role)
	return &Session{Token: token, User: u}, nil
}

// Register adds a new principal to the catalog. It does not create a session;
// the caller is expected to log in afterwards.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (catalog.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return catalog.User{}, ErrMissingFields
	}
	role := catalog.Role(req.Role)
	if !role.Valid() {
		return catalog.User{}, ErrInvalidRole
	}

	u := catalog.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Phone:    req.Phone,
	}
	switch role {
	case catalog.RoleDoctor:
		u.Doctor = &catalog.DoctorProfile{
			Specialization: req.Specialization,
			Experience:     req.Experience,
		}
	case catalog.RolePatient:
		u.Patient = &catalog.PatientProfile{
			Age:            req.Age,
			Gender:         req.Gender,
			MedicalHistory: req.MedicalHistory,
			Allergies:      req.Allergies,
		}
	}

	created := s.store.Register(u)
	slog.Info("user registered", "user_id", created.ID, "role", created.Role)
	return created, nil
}

// Logout removes the session record. Deleting an already-expired token is not
// an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return err
	}
	slog.Debug("session deleted", "token_prefix", tokenPrefix(token))
	return nil
}

func (s *authService) Principal(ctx context.Context, token string) (catalog.User, error) {
	if token == "" {
		return catalog.User{}, ErrSessionNotFound
	}
	return s.sessions.Load(ctx, token)
}

// tokenPrefix returns a short, log-safe fragment of a session token.
func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8]
}
