package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jobra/portal_backend/internal/api/http/handler"
)

// The nav menu resolves the session when one is present but never requires
// one, so only the session middleware applies.
func (r *Router) registerNavRoutes(app fiber.Router, h *handler.NavHandler, session fiber.Handler) {
	app.Get("/nav", session, h.Menu)
}
