package catalog

import (
	"testing"
	"time"
)

func TestAuthenticate(t *testing.T) {
	s := New()

	t.Run("every seeded user can authenticate", func(t *testing.T) {
		for _, u := range seedUsers() {
			got, ok := s.Authenticate(u.Email, u.Password)
			if !ok {
				t.Errorf("Authenticate(%q) failed", u.Email)
				continue
			}
			if got.ID != u.ID || got.Role != u.Role {
				t.Errorf("Authenticate(%q) = id %d role %s, want id %d role %s",
					u.Email, got.ID, got.Role, u.ID, u.Role)
			}
			if got.Password != "" {
				t.Errorf("Authenticate(%q) returned a credential", u.Email)
			}
		}
	})

	tests := []struct {
		name     string
		email    string
		password string
		wantOK   bool
	}{
		{"known email wrong password", "admin@jobra.com", "wrong", false},
		{"unknown email", "nobody@jobra.com", "admin123", false},
		{"empty credentials", "", "", false},
		{"exact match", "admin@jobra.com", "admin123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := s.Authenticate(tt.email, tt.password)
			if ok != tt.wantOK {
				t.Errorf("Authenticate(%q, %q) ok = %v, want %v", tt.email, tt.password, ok, tt.wantOK)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("assigns size-based IDs", func(t *testing.T) {
		s := New()
		first := s.Register(User{Email: "new1@jobra.com", Password: "pw", Role: RolePatient, Name: "New One"})
		if first.ID != 13 {
			t.Errorf("first registered ID = %d, want 13", first.ID)
		}
		second := s.Register(User{Email: "new2@jobra.com", Password: "pw", Role: RolePatient, Name: "New Two"})
		if second.ID != 14 {
			t.Errorf("second registered ID = %d, want 14", second.ID)
		}
	})

	t.Run("doctor starts with zero rating and patients", func(t *testing.T) {
		s := New()
		u := s.Register(User{
			Email: "dr.new@jobra.com", Password: "pw", Role: RoleDoctor, Name: "Dr. New",
			Doctor: &DoctorProfile{Specialization: "Dermatology Specialist", Experience: "3 years", Rating: 4.5, PatientsCount: 40},
		})
		if u.Doctor == nil {
			t.Fatal("registered doctor has no doctor profile")
		}
		if u.Doctor.Rating != 0 || u.Doctor.PatientsCount != 0 {
			t.Errorf("new doctor rating/patients = %v/%d, want 0/0", u.Doctor.Rating, u.Doctor.PatientsCount)
		}
		if u.Patient != nil {
			t.Error("registered doctor carries a patient profile")
		}
	})

	t.Run("patient keeps patient profile only", func(t *testing.T) {
		s := New()
		u := s.Register(User{
			Email: "p@jobra.com", Password: "pw", Role: RolePatient, Name: "P",
			Patient: &PatientProfile{Age: 20, Gender: "Male", MedicalHistory: "None", Allergies: "None"},
			Doctor:  &DoctorProfile{Specialization: "should be dropped"},
		})
		if u.Patient == nil || u.Patient.Age != 20 {
			t.Error("patient profile not preserved")
		}
		if u.Doctor != nil {
			t.Error("registered patient carries a doctor profile")
		}
	})

	t.Run("does not enforce email uniqueness", func(t *testing.T) {
		s := New()
		dup := s.Register(User{Email: "admin@jobra.com", Password: "pw", Role: RolePatient, Name: "Dup"})
		if dup.ID == 0 {
			t.Error("duplicate-email registration was rejected")
		}
	})

	t.Run("does not log the user in", func(t *testing.T) {
		s := New()
		u := s.Register(User{Email: "quiet@jobra.com", Password: "pw", Role: RolePatient, Name: "Quiet"})
		if u.Password != "" {
			t.Error("register returned a credential")
		}
		// The stored record still holds the credential for later login.
		if _, ok := s.Authenticate("quiet@jobra.com", "pw"); !ok {
			t.Error("registered user cannot authenticate")
		}
	})
}

func TestUsersByRole(t *testing.T) {
	s := New()

	tests := []struct {
		role Role
		want int
	}{
		{RoleAdmin, 1},
		{RoleDoctor, 5},
		{RolePatient, 6},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got := s.UsersByRole(tt.role)
			if len(got) != tt.want {
				t.Fatalf("UsersByRole(%s) returned %d users, want %d", tt.role, len(got), tt.want)
			}
			prev := 0
			for _, u := range got {
				if u.Role != tt.role {
					t.Errorf("UsersByRole(%s) returned role %s", tt.role, u.Role)
				}
				if u.Password != "" {
					t.Errorf("UsersByRole(%s) leaked a credential", tt.role)
				}
				if u.ID < prev {
					t.Errorf("UsersByRole(%s) broke catalog order", tt.role)
				}
				prev = u.ID
			}
		})
	}
}

func TestAppointmentsFor(t *testing.T) {
	appointments := []Appointment{
		{ID: 1, PatientID: 5, DoctorID: 2, PatientName: "P", DoctorName: "D", Date: "2024-02-01", Time: "10:00 AM", Status: AppointmentPending, Reason: "checkup"},
	}
	s := NewFromData(nil, appointments, nil, nil)

	tests := []struct {
		name   string
		userID int
		role   Role
		want   int
	}{
		{"patient sees own booking", 5, RolePatient, 1},
		{"other patient sees nothing", 99, RolePatient, 0},
		{"doctor sees own appointment", 2, RoleDoctor, 1},
		{"other doctor sees nothing", 3, RoleDoctor, 0},
		{"admin sees everything regardless of id", 99, RoleAdmin, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.AppointmentsFor(tt.userID, tt.role)
			if len(got) != tt.want {
				t.Errorf("AppointmentsFor(%d, %s) returned %d, want %d", tt.userID, tt.role, len(got), tt.want)
			}
		})
	}
}

func TestReportsAndReviewsScoping(t *testing.T) {
	s := New()

	if got := s.ReportsFor(7, RolePatient); len(got) != 1 || got[0].PatientID != 7 {
		t.Errorf("ReportsFor(7, patient) = %v", got)
	}
	if got := s.ReportsFor(4, RoleDoctor); len(got) != 2 {
		t.Errorf("ReportsFor(4, doctor) returned %d reports, want 2", len(got))
	}
	if got := s.ReportsFor(0, RoleAdmin); len(got) != 6 {
		t.Errorf("ReportsFor(admin) returned %d reports, want all 6", len(got))
	}

	if got := s.ReviewsFor(2, RoleDoctor); len(got) != 2 {
		t.Errorf("ReviewsFor(2, doctor) returned %d reviews, want 2", len(got))
	}
	if got := s.ReviewsFor(0, RoleAdmin); len(got) != 6 {
		t.Errorf("ReviewsFor(admin) returned %d reviews, want all 6", len(got))
	}
}

func TestAddAppointment(t *testing.T) {
	s := New()
	created := s.AddAppointment(Appointment{
		PatientID: 7, DoctorID: 2,
		PatientName: "Rokhsana Begum", DoctorName: "Dr. Mohammad Abdul Rahman",
		Date: "2024-02-10", Time: "09:00 AM", Reason: "follow-up",
		Status: AppointmentConfirmed, // must be overridden
	})

	if created.Status != AppointmentPending {
		t.Errorf("new appointment status = %s, want pending", created.Status)
	}
	if created.ID != 7 {
		t.Errorf("new appointment ID = %d, want 7", created.ID)
	}
	if got := s.AppointmentsFor(7, RolePatient); len(got) != 2 {
		t.Errorf("patient 7 now has %d appointments, want 2", len(got))
	}
}

func TestAddReview(t *testing.T) {
	s := New()
	s.now = func() time.Time { return time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC) }

	created := s.AddReview(Review{
		PatientID: 7, DoctorID: 3,
		PatientName: "Rokhsana Begum", DoctorName: "Dr. Fatema Begum",
		Rating: 4, Comment: "Helpful.",
		Status: ReviewApproved, // must be overridden
	})

	if created.Status != ReviewPending {
		t.Errorf("new review status = %s, want pending", created.Status)
	}
	if created.Date != "2024-03-05" {
		t.Errorf("new review date = %q, want 2024-03-05", created.Date)
	}
	if created.ID != 7 {
		t.Errorf("new review ID = %d, want 7", created.ID)
	}
}

func TestUpdateReviewStatus(t *testing.T) {
	s := New()

	before := s.ReviewsFor(0, RoleAdmin)

	updated, ok := s.UpdateReviewStatus(2, ReviewApproved)
	if !ok {
		t.Fatal("UpdateReviewStatus(2) reported not found")
	}
	if updated.Status != ReviewApproved {
		t.Errorf("updated status = %s, want approved", updated.Status)
	}
	if updated.Comment != before[1].Comment || updated.Rating != before[1].Rating {
		t.Error("UpdateReviewStatus changed fields other than status")
	}

	after := s.ReviewsFor(0, RoleAdmin)
	for i, r := range after {
		if r.ID == 2 {
			continue
		}
		if r != before[i] {
			t.Errorf("review %d changed: %+v != %+v", r.ID, r, before[i])
		}
	}

	if _, ok := s.UpdateReviewStatus(999, ReviewRejected); ok {
		t.Error("UpdateReviewStatus(999) reported found")
	}
}
