package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/jobra/portal_backend/internal/service/auth"
	"github.com/jobra/portal_backend/pkg/reqctx"
)

const (
	// SessionCookie is the cookie carrying the session token for browser
	// clients. API clients may send the same token as a Bearer header.
	SessionCookie = "portal_session"

	localPrincipal = "principal"
)

// Session resolves the session token on the request to a principal and
// attaches it to locals and the request context. Requests without a valid
// session pass through unauthenticated; gating is the ACL middleware's job
// so that it can answer with a redirect instead of a bare 401.
func Session(svc auth.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := SessionToken(c)
		if token == "" {
			return c.Next()
		}

		u, err := svc.Principal(c.Context(), token)
		if err != nil {
			// An unknown or expired token is ordinary anonymous traffic.
			// Anything else is the session store failing, which must not
			// drown silently in login redirects.
			if !errors.Is(err, auth.ErrSessionNotFound) {
				slog.Error("session lookup failed", "error", err, "path", c.Path())
			}
			return c.Next()
		}

		p := reqctx.Principal{ID: u.ID, Role: string(u.Role)}
		c.Locals(localPrincipal, p)
		c.SetContext(reqctx.WithPrincipal(c.Context(), p))
		return c.Next()
	}
}

// SessionToken extracts the token from the Authorization header, falling
// back to the session cookie.
func SessionToken(c fiber.Ctx) string {
	if h := c.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Cookies(SessionCookie)
}

// PrincipalFromFiber retrieves the authenticated principal from Fiber locals.
func PrincipalFromFiber(c fiber.Ctx) (reqctx.Principal, bool) {
	v := c.Locals(localPrincipal)
	p, ok := v.(reqctx.Principal)
	return p, ok
}
