// Package appointment exposes the appointment collection scoped to the
// calling principal, plus patient-side booking.
package appointment

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/pkg/reqctx"
)

// BookRequest is the booking form payload. The patient identity comes from
// the session, never from the request body.
type BookRequest struct {
	DoctorID int    `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
}

type Service interface {
	// ListFor returns the appointments visible to the principal: own
	// appointments for patients and doctors, the whole collection for admins.
	ListFor(ctx context.Context, p reqctx.Principal) ([]catalog.Appointment, error)
	Book(ctx context.Context, p reqctx.Principal, req BookRequest) (catalog.Appointment, error)
	// Slots returns the fixed list of bookable time-of-day labels.
	Slots(ctx context.Context) []string
}

type appointmentService struct {
	store *catalog.Store
}

func New(store *catalog.Store) Service {
	return &appointmentService{store: store}
}

func (s *appointmentService) ListFor(ctx context.Context, p reqctx.Principal) ([]catalog.Appointment, error) {
	return s.store.AppointmentsFor(p.ID, catalog.Role(p.Role)), nil
}

func (s *appointmentService) Book(ctx context.Context, p reqctx.Principal, req BookRequest) (catalog.Appointment, error) {
	if req.DoctorID == 0 || req.Date == "" || req.Time == "" {
		return catalog.Appointment{}, ErrMissingFields
	}
	if !lo.Contains(catalog.TimeSlots, req.Time) {
		return catalog.Appointment{}, ErrInvalidSlot
	}

	doctor, ok := s.store.UserByID(req.DoctorID)
	if !ok || doctor.Role != catalog.RoleDoctor {
		return catalog.Appointment{}, ErrDoctorNotFound
	}
	patient, ok := s.store.UserByID(p.ID)
	if !ok {
		return catalog.Appointment{}, ErrUnknownPatient
	}

	created := s.store.AddAppointment(catalog.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		PatientName: patient.Name,
		DoctorName:  doctor.Name,
		Date:        req.Date,
		Time:        req.Time,
		Reason:      req.Reason,
	})
	slog.Info("appointment booked",
		"appointment_id", created.ID,
		"patient_id", created.PatientID,
		"doctor_id", created.DoctorID,
	)
	return created, nil
}

func (s *appointmentService) Slots(ctx context.Context) []string {
	return catalog.TimeSlots
}
