package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/samber/lo"

	"github.com/jobra/portal_backend/internal/api/http/middleware"
	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/internal/service/appointment"
	"github.com/jobra/portal_backend/internal/service/report"
	"github.com/jobra/portal_backend/internal/service/review"
	"github.com/jobra/portal_backend/internal/service/user"
)

type PatientHandler struct {
	appointments appointment.Service
	reports      report.Service
	reviews      review.Service
	users        user.Service
}

func NewPatientHandler(
	appointments appointment.Service,
	reports report.Service,
	reviews review.Service,
	users user.Service,
) *PatientHandler {
	return &PatientHandler{
		appointments: appointments,
		reports:      reports,
		reviews:      reviews,
		users:        users,
	}
}

// GET /patient/dashboard
func (h *PatientHandler) Dashboard(c fiber.Ctx) error {
	p, _ := middleware.PrincipalFromFiber(c)

	appts, err := h.appointments.ListFor(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	reports, err := h.reports.ListFor(c.Context(), p)
	if err != nil {
		return internalError(c)
	}

	upcoming := lo.Filter(appts, func(a catalog.Appointment, _ int) bool {
		return a.Status == catalog.AppointmentConfirmed && !dateBeforeToday(a.Date)
	})

	return ok(c, fiber.Map{
		"stats": fiber.Map{
			"upcoming_appointments": len(upcoming),
			"total_reports":         len(reports),
			"total_appointments":    len(appts),
		},
		"upcoming_appointments": firstN(upcoming, 3),
		"recent_reports":        firstN(reports, 3),
	})
}

// GET /patient/reports
func (h *PatientHandler) Reports(c fiber.Ctx) error {
	p, _ := middleware.PrincipalFromFiber(c)
	list, err := h.reports.ListFor(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	return ok(c, list)
}

// GET /patient/appointments
func (h *PatientHandler) Appointments(c fiber.Ctx) error {
	p, _ := middleware.PrincipalFromFiber(c)
	list, err := h.appointments.ListFor(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	return ok(c, list)
}

// GET /patient/book-appointment
//
// Returns the booking form data: the doctor directory and the slot grid.
func (h *PatientHandler) BookingForm(c fiber.Ctx) error {
	doctors, err := h.users.Doctors(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{
		"doctors": doctors,
		"slots":   h.appointments.Slots(c.Context()),
	})
}

// POST /patient/book-appointment
func (h *PatientHandler) BookAppointment(c fiber.Ctx) error {
	p, _ := middleware.PrincipalFromFiber(c)

	var body appointment.BookRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.appointments.Book(c.Context(), p, body)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrMissingFields),
			errors.Is(err, appointment.ErrInvalidSlot):
			return badRequest(c, err.Error())
		case errors.Is(err, appointment.ErrDoctorNotFound):
			return notFound(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return created(c, a)
}

// GET /patient/doctors
func (h *PatientHandler) Doctors(c fiber.Ctx) error {
	doctors, err := h.users.Doctors(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, doctors)
}

// GET /patient/reviews
func (h *PatientHandler) Reviews(c fiber.Ctx) error {
	p, _ := middleware.PrincipalFromFiber(c)
	list, err := h.reviews.ListFor(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	doctors, err := h.users.Doctors(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{
		"reviews": list,
		"doctors": doctors,
	})
}

// POST /patient/reviews
func (h *PatientHandler) SubmitReview(c fiber.Ctx) error {
	p, _ := middleware.PrincipalFromFiber(c)

	var body review.SubmitRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.reviews.Submit(c.Context(), p, body)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating):
			return badRequest(c, err.Error())
		case errors.Is(err, review.ErrDoctorNotFound):
			return notFound(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return created(c, r)
}

// dateBeforeToday reports whether a YYYY-MM-DD date string falls strictly
// before today. Unparseable dates count as past.
func dateBeforeToday(date string) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return true
	}
	today := time.Now().Truncate(24 * time.Hour)
	return d.Before(today)
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
