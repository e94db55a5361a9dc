package catalog

// Role is the closed set of principal roles. A user's role is fixed at
// registration and never changes.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// AppointmentStatus values an appointment can carry. Booking always creates
// appointments as pending; the other states are reached through doctor or
// admin action.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

type ReportStatus string

const (
	ReportNormal   ReportStatus = "normal"
	ReportAbnormal ReportStatus = "abnormal"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

// DoctorProfile carries the doctor-only attributes. Present on a User exactly
// when Role == RoleDoctor, with every field set (zero values for new doctors).
type DoctorProfile struct {
	Specialization string  `json:"specialization"`
	Experience     string  `json:"experience"`
	Rating         float64 `json:"rating"`
	PatientsCount  int     `json:"patients_count"`
	Hospital       string  `json:"hospital,omitempty"`
}

// PatientProfile carries the patient-only attributes. Present on a User
// exactly when Role == RolePatient.
type PatientProfile struct {
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medical_history"`
	Allergies      string `json:"allergies"`
	Address        string `json:"address,omitempty"`
}

// User is a principal: an identity record with a role tag and role-dependent
// attributes. The password is compared in plaintext against the catalog (this
// is a mock identity store, not a real authentication system) and is excluded
// from every serialized form.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`

	Doctor  *DoctorProfile  `json:"doctor,omitempty"`
	Patient *PatientProfile `json:"patient,omitempty"`
}

// Sanitized returns a copy of the user with the credential cleared. This is
// the only form that may leave the catalog: login results, session records and
// directory listings all go through it.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

type Appointment struct {
	ID          int               `json:"id"`
	PatientID   int               `json:"patient_id"`
	DoctorID    int               `json:"doctor_id"`
	PatientName string            `json:"patient_name"`
	DoctorName  string            `json:"doctor_name"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Time        string            `json:"time"` // slot label, e.g. "10:00 AM"
	Status      AppointmentStatus `json:"status"`
	Reason      string            `json:"reason"`
}

type Report struct {
	ID          int          `json:"id"`
	PatientID   int          `json:"patient_id"`
	DoctorID    int          `json:"doctor_id"`
	PatientName string       `json:"patient_name"`
	DoctorName  string       `json:"doctor_name"`
	Date        string       `json:"date"`
	Type        string       `json:"type"`
	Results     string       `json:"results"`
	Status      ReportStatus `json:"status"`
}

type Review struct {
	ID          int          `json:"id"`
	PatientID   int          `json:"patient_id"`
	DoctorID    int          `json:"doctor_id"`
	PatientName string       `json:"patient_name"`
	DoctorName  string       `json:"doctor_name"`
	Rating      int          `json:"rating"` // 1-5
	Comment     string       `json:"comment"`
	Status      ReviewStatus `json:"status"`
	Date        string       `json:"date"`
}

// TimeSlots is the fixed list of bookable time-of-day labels offered by the
// booking form.
var TimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "02:00 PM", "02:30 PM",
	"03:00 PM", "03:30 PM", "04:00 PM", "04:30 PM",
}
