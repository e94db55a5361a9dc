package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jobra/portal_backend/internal/api/http/middleware"
	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/internal/routes"
)

type NavHandler struct{}

func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// GET /nav
//
// Open to everyone: anonymous requests get an empty menu rather than a
// redirect, so clients can render their chrome before logging in.
func (h *NavHandler) Menu(c fiber.Ctx) error {
	role := catalog.Role("")
	if p, ok := middleware.PrincipalFromFiber(c); ok {
		role = catalog.Role(p.Role)
	}
	return ok(c, fiber.Map{
		"items": routes.NavFor(role),
		"home":  routes.HomeFor(role),
	})
}
