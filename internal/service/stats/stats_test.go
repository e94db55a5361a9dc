package stats

import (
	"context"
	"testing"

	"github.com/jobra/portal_backend/internal/catalog"
)

func TestOverviewSeedCounts(t *testing.T) {
	svc := New(catalog.New())

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}

	want := Overview{
		TotalUsers:        12,
		TotalDoctors:      5,
		TotalPatients:     6,
		TotalAppointments: 6,
		TotalReports:      6,
		TotalReviews:      6,

		ConfirmedAppointments: 4,
		PendingAppointments:   2,
		NormalReports:         3,
		AbnormalReports:       3,
		ApprovedReviews:       4,
		PendingReviews:        2,
	}
	if got != want {
		t.Errorf("Overview = %+v, want %+v", got, want)
	}
}

func TestOverviewTracksMutations(t *testing.T) {
	store := catalog.New()
	svc := New(store)

	store.AddAppointment(catalog.Appointment{PatientID: 7, DoctorID: 2, Date: "2024-04-01", Time: "10:00 AM"})
	store.UpdateReviewStatus(2, catalog.ReviewApproved)

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	if got.TotalAppointments != 7 || got.PendingAppointments != 3 {
		t.Errorf("appointments = (%d total, %d pending), want (7, 3)", got.TotalAppointments, got.PendingAppointments)
	}
	if got.ApprovedReviews != 5 || got.PendingReviews != 1 {
		t.Errorf("reviews = (%d approved, %d pending), want (5, 1)", got.ApprovedReviews, got.PendingReviews)
	}
}
