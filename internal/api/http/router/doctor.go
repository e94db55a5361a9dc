package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jobra/portal_backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(app fiber.Router, h *handler.DoctorHandler, session, gate fiber.Handler) {
	group := app.Group("/doctor", session, gate)
	group.Get("/dashboard", h.Dashboard)
	group.Get("/patients", h.Patients)
	group.Get("/reports", h.Reports)
	group.Get("/appointments", h.Appointments)
}
