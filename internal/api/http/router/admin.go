package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jobra/portal_backend/internal/api/http/handler"
)

func (r *Router) registerAdminRoutes(app fiber.Router, h *handler.AdminHandler, session, gate fiber.Handler) {
	group := app.Group("/admin", session, gate)
	group.Get("/dashboard", h.Dashboard)
	group.Get("/users", h.Users)
	group.Get("/reviews", h.Reviews)
	group.Patch("/reviews/:id", h.ModerateReview)
	group.Get("/statistics", h.Statistics)
}
