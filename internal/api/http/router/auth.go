package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jobra/portal_backend/internal/api/http/handler"
	"github.com/jobra/portal_backend/internal/routes"
)

// The auth destinations are the two open ones; no session or gate applies.
func (r *Router) registerAuthRoutes(app fiber.Router, h *handler.AuthHandler) {
	app.Get(routes.LoginPath, h.LoginForm)
	app.Post(routes.LoginPath, h.Login)
	app.Get(routes.RegisterPath, h.RegisterForm)
	app.Post(routes.RegisterPath, h.Register)
	app.Post("/logout", h.Logout)
}
