package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/samber/lo"

	"github.com/jobra/portal_backend/internal/api/http/middleware"
	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/internal/service/appointment"
	"github.com/jobra/portal_backend/internal/service/review"
)

type DoctorHandler struct {
	appointments appointment.Service
	reviews      review.Service
}

func NewDoctorHandler(appointments appointment.Service, reviews review.Service) *DoctorHandler {
	return &DoctorHandler{appointments: appointments, reviews: reviews}
}

// GET /doctor/dashboard
func (h *DoctorHandler) Dashboard(c fiber.Ctx) error {
	p, _ := middleware.PrincipalFromFiber(c)

	appts, err := h.appointments.ListFor(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	reviews, err := h.reviews.ListFor(c.Context(), p)
	if err != nil {
		return internalError(c)
	}

	today := time.Now().Format("2006-01-02")
	todays := lo.Filter(appts, func(a catalog.Appointment, _ int) bool {
		return a.Date == today
	})
	pending := lo.Filter(appts, func(a catalog.Appointment, _ int) bool {
		return a.Status == catalog.AppointmentPending
	})
	upcoming := lo.Filter(appts, func(a catalog.Appointment, _ int) bool {
		return a.Status == catalog.AppointmentConfirmed && !dateBeforeToday(a.Date)
	})

	return ok(c, fiber.Map{
		"stats": fiber.Map{
			"todays_appointments":  len(todays),
			"pending_appointments": len(pending),
			"total_reviews":        len(reviews),
		},
		"todays_appointments":   todays,
		"upcoming_appointments": firstN(upcoming, 3),
		"recent_reviews":        firstN(reviews, 3),
	})
}

// The remaining doctor destinations are placeholders: reachable, role-gated,
// but the feature itself is not built yet.

// GET /doctor/patients
func (h *DoctorHandler) Patients(c fiber.Ctx) error {
	return comingSoon(c, "Patient Management")
}

// GET /doctor/reports
func (h *DoctorHandler) Reports(c fiber.Ctx) error {
	return comingSoon(c, "Medical Reports Management")
}

// GET /doctor/appointments
func (h *DoctorHandler) Appointments(c fiber.Ctx) error {
	return comingSoon(c, "Appointment Management")
}

func comingSoon(c fiber.Ctx, feature string) error {
	return ok(c, fiber.Map{
		"feature": feature,
		"message": "This feature is coming soon!",
	})
}
