package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/jobra/portal_backend/internal/api/http/middleware"
	"github.com/jobra/portal_backend/internal/routes"
	"github.com/jobra/portal_backend/internal/service/auth"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// GET /login
//
// The landing target of every redirect. Echoes the resume context so a
// client can keep it across the login round trip.
func (h *AuthHandler) LoginForm(c fiber.Ctx) error {
	return ok(c, fiber.Map{"from": c.Query("from")})
}

// GET /register
func (h *AuthHandler) RegisterForm(c fiber.Ctx) error {
	return ok(c, fiber.Map{
		"roles": []string{"patient", "doctor"},
	})
}

// POST /login
//
// The "from" query parameter set by the access gate is accepted and echoed
// back so a client could resume where it was heading, but nothing here acts
// on it.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	sess, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return unauthorized(c, err.Error())
		}
		return internalError(c)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ok(c, fiber.Map{
		"token": sess.Token,
		"user":  sess.User,
		"home":  routes.HomeFor(sess.User.Role),
		"from":  c.Query("from"),
	})
}

// POST /register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body auth.RegisterRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Register(c.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields), errors.Is(err, auth.ErrInvalidRole):
			return badRequest(c, err.Error())
		default:
			return internalError(c)
		}
	}

	// Registration does not log the user in; the client goes to /login next.
	return created(c, fiber.Map{"user": u})
}

// POST /logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	token := middleware.SessionToken(c)
	if token == "" {
		return unauthorized(c, "not logged in")
	}
	if err := h.svc.Logout(c.Context(), token); err != nil {
		return internalError(c)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ok(c, fiber.Map{"redirect": routes.LoginPath})
}
