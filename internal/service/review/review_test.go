package review

import (
	"context"
	"errors"
	"testing"

	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/pkg/reqctx"
)

func TestSubmitForcesPending(t *testing.T) {
	svc := New(catalog.New())
	patient := reqctx.Principal{ID: 7, Role: "patient"}

	created, err := svc.Submit(context.Background(), patient, SubmitRequest{
		DoctorID: 3,
		Rating:   4,
		Comment:  "Very attentive",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("ID = %d, want 7", created.ID)
	}
	if created.Status != catalog.ReviewPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
	if created.PatientName != "Rokhsana Begum" || created.DoctorName != "Dr. Fatema Begum" {
		t.Errorf("denormalized names = (%q, %q)", created.PatientName, created.DoctorName)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := New(catalog.New())
	patient := reqctx.Principal{ID: 7, Role: "patient"}

	tests := []struct {
		name    string
		req     SubmitRequest
		wantErr error
	}{
		{"rating too low", SubmitRequest{DoctorID: 3, Rating: 0}, ErrInvalidRating},
		{"rating too high", SubmitRequest{DoctorID: 3, Rating: 6}, ErrInvalidRating},
		{"unknown doctor", SubmitRequest{DoctorID: 99, Rating: 3}, ErrDoctorNotFound},
		{"admin as doctor", SubmitRequest{DoctorID: 1, Rating: 3}, ErrDoctorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), patient, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetStatus(t *testing.T) {
	svc := New(catalog.New())

	updated, err := svc.SetStatus(context.Background(), 2, "approved")
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if updated.Status != catalog.ReviewApproved {
		t.Errorf("status = %q, want approved", updated.Status)
	}

	if _, err := svc.SetStatus(context.Background(), 2, "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.SetStatus(context.Background(), 999, "approved"); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("err = %v, want ErrReviewNotFound", err)
	}
}

func TestListForScoping(t *testing.T) {
	svc := New(catalog.New())

	got, err := svc.ListFor(context.Background(), reqctx.Principal{ID: 1, Role: "admin"})
	if err != nil {
		t.Fatalf("ListFor returned error: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("admin len = %d, want 6", len(got))
	}

	got, err = svc.ListFor(context.Background(), reqctx.Principal{ID: 2, Role: "doctor"})
	if err != nil {
		t.Fatalf("ListFor returned error: %v", err)
	}
	for _, r := range got {
		if r.DoctorID != 2 {
			t.Errorf("review %d targets doctor %d, want 2", r.ID, r.DoctorID)
		}
	}
}
