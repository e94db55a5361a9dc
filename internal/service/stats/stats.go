// Package stats computes the admin dashboard counters from the catalog.
package stats

import (
	"context"

	"github.com/samber/lo"

	"github.com/jobra/portal_backend/internal/catalog"
)

// Overview is the admin dashboard stat grid: collection totals plus the
// status breakdowns shown in the overview cards.
type Overview struct {
	TotalUsers        int `json:"total_users"`
	TotalDoctors      int `json:"total_doctors"`
	TotalPatients     int `json:"total_patients"`
	TotalAppointments int `json:"total_appointments"`
	TotalReports      int `json:"total_reports"`
	TotalReviews      int `json:"total_reviews"`

	ConfirmedAppointments int `json:"confirmed_appointments"`
	PendingAppointments   int `json:"pending_appointments"`
	NormalReports         int `json:"normal_reports"`
	AbnormalReports       int `json:"abnormal_reports"`
	ApprovedReviews       int `json:"approved_reviews"`
	PendingReviews        int `json:"pending_reviews"`
}

type Service interface {
	Overview(ctx context.Context) (Overview, error)
}

type statsService struct {
	store *catalog.Store
}

func New(store *catalog.Store) Service {
	return &statsService{store: store}
}

func (s *statsService) Overview(ctx context.Context) (Overview, error) {
	users := s.store.AllUsers()
	appointments := s.store.AppointmentsFor(0, catalog.RoleAdmin)
	reports := s.store.ReportsFor(0, catalog.RoleAdmin)
	reviews := s.store.ReviewsFor(0, catalog.RoleAdmin)

	return Overview{
		TotalUsers:        len(users),
		TotalDoctors:      lo.CountBy(users, func(u catalog.User) bool { return u.Role == catalog.RoleDoctor }),
		TotalPatients:     lo.CountBy(users, func(u catalog.User) bool { return u.Role == catalog.RolePatient }),
		TotalAppointments: len(appointments),
		TotalReports:      len(reports),
		TotalReviews:      len(reviews),

		ConfirmedAppointments: lo.CountBy(appointments, func(a catalog.Appointment) bool { return a.Status == catalog.AppointmentConfirmed }),
		PendingAppointments:   lo.CountBy(appointments, func(a catalog.Appointment) bool { return a.Status == catalog.AppointmentPending }),
		NormalReports:         lo.CountBy(reports, func(r catalog.Report) bool { return r.Status == catalog.ReportNormal }),
		AbnormalReports:       lo.CountBy(reports, func(r catalog.Report) bool { return r.Status == catalog.ReportAbnormal }),
		ApprovedReviews:       lo.CountBy(reviews, func(r catalog.Review) bool { return r.Status == catalog.ReviewApproved }),
		PendingReviews:        lo.CountBy(reviews, func(r catalog.Review) bool { return r.Status == catalog.ReviewPending }),
	}, nil
}
