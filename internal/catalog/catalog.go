// Package catalog owns the portal's in-memory dataset: the principal table
// plus the appointment, medical report and review collections. The data lives
// only for the process lifetime and is reachable exclusively through Store
// methods; nothing outside this package mutates the slices.
package catalog

import (
	"sync"
	"time"

	"github.com/samber/lo"
)

// Store holds the four entity collections. A single instance is constructed
// at startup and injected into every service that needs it. The original
// dataset has no delete path: collections only grow or have a status field
// changed in place, which keeps the size-based ID scheme (below) safe.
type Store struct {
	mu           sync.RWMutex
	users        []User
	appointments []Appointment
	reports      []Report
	reviews      []Review

	now func() time.Time
}

// New returns a Store populated with the seed dataset.
func New() *Store {
	return NewFromData(seedUsers(), seedAppointments(), seedReports(), seedReviews())
}

// NewFromData returns a Store over the given collections. Used by New and by
// tests that need a controlled dataset.
func NewFromData(users []User, appointments []Appointment, reports []Report, reviews []Review) *Store {
	return &Store{
		users:        users,
		appointments: appointments,
		reports:      reports,
		reviews:      reviews,
		now:          time.Now,
	}
}

// Authenticate scans the principal table for an exact (email, password)
// match. On success it returns a sanitized copy of the user. A miss reports
// only false; callers must not distinguish unknown email from wrong password.
func (s *Store) Authenticate(email, password string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return u.Sanitized(), true
		}
	}
	return User{}, false
}

// Register appends a new principal and returns a sanitized copy.
//
// The new ID is the current table size plus one. IDs are never reused because
// no removal path exists; if one is ever added this scheme must change first.
// Email uniqueness is deliberately not enforced here (the original behavior is
// permissive, and callers rely on it).
//
// Doctors always start with a zero rating and zero treated patients,
// whatever the caller supplied. Registering does not log the user in.
func (s *Store) Register(u User) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = len(s.users) + 1
	switch u.Role {
	case RoleDoctor:
		if u.Doctor == nil {
			u.Doctor = &DoctorProfile{}
		}
		u.Doctor.Rating = 0
		u.Doctor.PatientsCount = 0
		u.Patient = nil
	case RolePatient:
		if u.Patient == nil {
			u.Patient = &PatientProfile{}
		}
		u.Doctor = nil
	default:
		u.Doctor = nil
		u.Patient = nil
	}

	s.users = append(s.users, u)
	return u.Sanitized()
}

// UserByID returns a sanitized copy of the user with the given ID.
func (s *Store) UserByID(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u.Sanitized(), true
		}
	}
	return User{}, false
}

// UsersByRole returns sanitized copies of every user with the given role, in
// catalog order.
func (s *Store) UsersByRole(role Role) []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := lo.Filter(s.users, func(u User, _ int) bool { return u.Role == role })
	return lo.Map(matched, func(u User, _ int) User { return u.Sanitized() })
}

// AllUsers returns sanitized copies of the whole principal table.
func (s *Store) AllUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Map(s.users, func(u User, _ int) User { return u.Sanitized() })
}

// AppointmentsFor returns the appointments visible to the given principal:
// patients see appointments they booked, doctors see appointments addressed
// to them, and any other role (admin) sees the full collection. This
// role-dispatched filter is the data-access half of authorization; the route
// gate is the other half.
func (s *Store) AppointmentsFor(userID int, role Role) []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch role {
	case RolePatient:
		return lo.Filter(s.appointments, func(a Appointment, _ int) bool { return a.PatientID == userID })
	case RoleDoctor:
		return lo.Filter(s.appointments, func(a Appointment, _ int) bool { return a.DoctorID == userID })
	}
	out := make([]Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// ReportsFor applies the same role dispatch as AppointmentsFor to medical
// reports.
func (s *Store) ReportsFor(userID int, role Role) []Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch role {
	case RolePatient:
		return lo.Filter(s.reports, func(r Report, _ int) bool { return r.PatientID == userID })
	case RoleDoctor:
		return lo.Filter(s.reports, func(r Report, _ int) bool { return r.DoctorID == userID })
	}
	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// ReviewsFor applies the same role dispatch to reviews: patients see reviews
// they wrote, doctors see reviews about them, admins see everything.
func (s *Store) ReviewsFor(userID int, role Role) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch role {
	case RolePatient:
		return lo.Filter(s.reviews, func(r Review, _ int) bool { return r.PatientID == userID })
	case RoleDoctor:
		return lo.Filter(s.reviews, func(r Review, _ int) bool { return r.DoctorID == userID })
	}
	out := make([]Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// AddAppointment appends a new appointment. The status is forced to pending
// regardless of input and the ID follows the size-based scheme.
func (s *Store) AddAppointment(a Appointment) Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = len(s.appointments) + 1
	a.Status = AppointmentPending
	s.appointments = append(s.appointments, a)
	return a
}

// AddReview appends a new review. The status is forced to pending and the
// creation date is stamped with the current day.
func (s *Store) AddReview(r Review) Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = len(s.reviews) + 1
	r.Status = ReviewPending
	r.Date = s.now().Format("2006-01-02")
	s.reviews = append(s.reviews, r)
	return r
}

// UpdateReviewStatus mutates the status of the review with the given ID in
// place, leaving every other field and every other review untouched. The
// second return is false when no review has that ID; callers must check it.
func (s *Store) UpdateReviewStatus(id int, status ReviewStatus) (Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews[i].Status = status
			return s.reviews[i], true
		}
	}
	return Review{}, false
}
