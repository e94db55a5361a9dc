package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/pkg/reqctx"
)

func TestListForScoping(t *testing.T) {
	svc := New(catalog.New())

	tests := []struct {
		name      string
		principal reqctx.Principal
		wantAll   bool
		owner     int
	}{
		{"patient sees own", reqctx.Principal{ID: 7, Role: "patient"}, false, 7},
		{"doctor sees own", reqctx.Principal{ID: 2, Role: "doctor"}, false, 2},
		{"admin sees all", reqctx.Principal{ID: 1, Role: "admin"}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListFor(context.Background(), tt.principal)
			if err != nil {
				t.Fatalf("ListFor returned error: %v", err)
			}
			if tt.wantAll {
				if len(got) != 6 {
					t.Fatalf("len = %d, want 6", len(got))
				}
				return
			}
			if len(got) == 0 {
				t.Fatal("expected at least one appointment")
			}
			for _, a := range got {
				owner := a.PatientID
				if tt.principal.Role == "doctor" {
					owner = a.DoctorID
				}
				if owner != tt.owner {
					t.Errorf("appointment %d owned by %d, want %d", a.ID, owner, tt.owner)
				}
			}
		})
	}
}

func TestBook(t *testing.T) {
	svc := New(catalog.New())
	patient := reqctx.Principal{ID: 7, Role: "patient"}

	created, err := svc.Book(context.Background(), patient, BookRequest{
		DoctorID: 2,
		Date:     "2024-04-01",
		Time:     "10:00 AM",
		Reason:   "Follow-up",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("ID = %d, want 7", created.ID)
	}
	if created.Status != catalog.AppointmentPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
	if created.PatientName != "Rokhsana Begum" || created.DoctorName != "Dr. Mohammad Abdul Rahman" {
		t.Errorf("denormalized names = (%q, %q)", created.PatientName, created.DoctorName)
	}
}

func TestBookValidation(t *testing.T) {
	svc := New(catalog.New())
	patient := reqctx.Principal{ID: 7, Role: "patient"}

	tests := []struct {
		name    string
		req     BookRequest
		wantErr error
	}{
		{"missing doctor", BookRequest{Date: "2024-04-01", Time: "10:00 AM"}, ErrMissingFields},
		{"missing date", BookRequest{DoctorID: 2, Time: "10:00 AM"}, ErrMissingFields},
		{"off-grid slot", BookRequest{DoctorID: 2, Date: "2024-04-01", Time: "10:15 AM"}, ErrInvalidSlot},
		{"unknown doctor", BookRequest{DoctorID: 99, Date: "2024-04-01", Time: "10:00 AM"}, ErrDoctorNotFound},
		{"patient as doctor", BookRequest{DoctorID: 7, Date: "2024-04-01", Time: "10:00 AM"}, ErrDoctorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(context.Background(), patient, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSlots(t *testing.T) {
	svc := New(catalog.New())
	slots := svc.Slots(context.Background())
	if len(slots) != 12 {
		t.Fatalf("len = %d, want 12", len(slots))
	}
	if slots[0] != "09:00 AM" || slots[11] != "04:30 PM" {
		t.Errorf("slot bounds = (%q, %q)", slots[0], slots[11])
	}
}
