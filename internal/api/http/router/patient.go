package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jobra/portal_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(app fiber.Router, h *handler.PatientHandler, session, gate fiber.Handler) {
	group := app.Group("/patient", session, gate)
	group.Get("/dashboard", h.Dashboard)
	group.Get("/reports", h.Reports)
	group.Get("/appointments", h.Appointments)
	group.Get("/book-appointment", h.BookingForm)
	group.Post("/book-appointment", h.BookAppointment)
	group.Get("/doctors", h.Doctors)
	group.Get("/reviews", h.Reviews)
	group.Post("/reviews", h.SubmitReview)
}
