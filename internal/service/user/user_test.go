package user

import (
	"context"
	"errors"
	"testing"

	"github.com/jobra/portal_backend/internal/catalog"
)

func TestGetByID(t *testing.T) {
	svc := New(catalog.New())

	u, err := svc.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if u.Role != catalog.RoleDoctor {
		t.Errorf("role = %q, want doctor", u.Role)
	}
	if u.Password != "" {
		t.Error("returned user must not carry the password")
	}

	if _, err := svc.GetByID(context.Background(), 99); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDirectories(t *testing.T) {
	svc := New(catalog.New())

	doctors, err := svc.Doctors(context.Background())
	if err != nil {
		t.Fatalf("Doctors returned error: %v", err)
	}
	if len(doctors) != 5 {
		t.Errorf("doctors = %d, want 5", len(doctors))
	}
	for _, d := range doctors {
		if d.Doctor == nil {
			t.Errorf("doctor %d has no profile", d.ID)
		}
	}

	patients, err := svc.Patients(context.Background())
	if err != nil {
		t.Fatalf("Patients returned error: %v", err)
	}
	if len(patients) != 6 {
		t.Errorf("patients = %d, want 6", len(patients))
	}

	all, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(all) != 12 {
		t.Errorf("all = %d, want 12", len(all))
	}
	for _, u := range all {
		if u.Password != "" {
			t.Fatalf("user %d leaked credential", u.ID)
		}
	}
}
