package middleware

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/internal/routes"
	"github.com/jobra/portal_backend/pkg/authorize"
)

// Gate enforces the destination access rules with redirects rather than bare
// status codes, matching browser navigation:
//
//   - no session: 302 to the login page, with the requested path carried in
//     the "from" query parameter so the client could resume after login
//   - session with the wrong role: 302 to the role's own home
//   - session with a role the policy table does not know: 302 to login
func Gate(auth authorize.IAuthorization) fiber.Handler {
	return func(c fiber.Ctx) error {
		path := c.Path()

		p, ok := PrincipalFromFiber(c)
		if !ok {
			return redirectToLogin(c, path)
		}

		err := auth.MustEnforce(c.Context(), authorize.Role(p.Role), authorize.Object(path))
		if err == nil {
			return c.Next()
		}
		if !errors.Is(err, authorize.ErrForbidden) {
			slog.Error("access check failed", "path", path, "role", p.Role, "error", err)
			return fiber.ErrInternalServerError
		}

		// Known roles bounce to their own dashboard, anything else to login.
		home := routes.HomeFor(catalog.Role(p.Role))
		slog.Debug("cross-role access redirected",
			"path", path,
			"role", p.Role,
			"redirect", home,
		)
		return c.Redirect().Status(fiber.StatusFound).To(home)
	}
}

// redirectToLogin sends the client to the login page, preserving the
// requested path as resume context.
func redirectToLogin(c fiber.Ctx, from string) error {
	target := routes.LoginPath + "?from=" + url.QueryEscape(from)
	return c.Redirect().Status(fiber.StatusFound).To(target)
}

// RedirectUnmatched is the catch-all for paths outside the destination
// table. Everything unknown lands on the login page.
func RedirectUnmatched() fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.Redirect().Status(fiber.StatusFound).To(routes.LoginPath)
	}
}
