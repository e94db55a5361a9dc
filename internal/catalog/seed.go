package catalog

// seedUsers is the static principal table the portal ships with. Passwords
// are plaintext on purpose: the catalog is a mock dataset, not an account
// database.
func seedUsers() []User {
	return []User{
		{
			ID: 1, Email: "admin@jobra.com", Password: "admin123", Role: RoleAdmin,
			Name: "Mohammad Rahman Ahmed", Phone: "+880-1712-345678", Location: "Dhanmondi, Dhaka",
		},
		{
			ID: 2, Email: "dr.rahman@jobra.com", Password: "doctor123", Role: RoleDoctor,
			Name: "Dr. Mohammad Abdul Rahman", Phone: "+880-1712-345679", Location: "Banani, Dhaka",
			Doctor: &DoctorProfile{
				Specialization: "Cardiology Specialist", Experience: "15 years",
				Rating: 4.8, PatientsCount: 150, Hospital: "Bangladesh Heart Institute",
			},
		},
		{
			ID: 3, Email: "dr.karim@jobra.com", Password: "doctor123", Role: RoleDoctor,
			Name: "Dr. Fatema Begum", Phone: "+880-1712-345680", Location: "Gulshan, Dhaka",
			Doctor: &DoctorProfile{
				Specialization: "Neurology Specialist", Experience: "12 years",
				Rating: 4.9, PatientsCount: 120, Hospital: "National Institute of Neurosciences",
			},
		},
		{
			ID: 4, Email: "dr.hasan@jobra.com", Password: "doctor123", Role: RoleDoctor,
			Name: "Dr. Mohammad Hasan Ali", Phone: "+880-1712-345681", Location: "Mirpur, Dhaka",
			Doctor: &DoctorProfile{
				Specialization: "Orthopedic Specialist", Experience: "10 years",
				Rating: 4.7, PatientsCount: 95, Hospital: "National Institute of Traumatology",
			},
		},
		{
			ID: 5, Email: "dr.ahmed@jobra.com", Password: "doctor123", Role: RoleDoctor,
			Name: "Dr. Nasir Uddin Ahmed", Phone: "+880-1712-345682", Location: "Uttara, Dhaka",
			Doctor: &DoctorProfile{
				Specialization: "Pediatric Specialist", Experience: "8 years",
				Rating: 4.6, PatientsCount: 80, Hospital: "Children Hospital",
			},
		},
		{
			ID: 6, Email: "dr.khan@jobra.com", Password: "doctor123", Role: RoleDoctor,
			Name: "Dr. Rokhsana Khan", Phone: "+880-1712-345683", Location: "Ramna, Dhaka",
			Doctor: &DoctorProfile{
				Specialization: "Gynecology Specialist", Experience: "14 years",
				Rating: 4.8, PatientsCount: 110, Hospital: "Bangabandhu Sheikh Mujib Medical University",
			},
		},
		{
			ID: 7, Email: "patient1@jobra.com", Password: "patient123", Role: RolePatient,
			Name: "Rokhsana Begum", Phone: "+880-1712-345684", Location: "Mohammadpur, Dhaka",
			Patient: &PatientProfile{
				Age: 35, Gender: "Female",
				MedicalHistory: "No significant medical history", Allergies: "No known allergies",
				Address: "House No. 12, Road No. 7, Mohammadpur",
			},
		},
		{
			ID: 8, Email: "patient2@jobra.com", Password: "patient123", Role: RolePatient,
			Name: "Mohammad Karim Uddin", Phone: "+880-1712-345685", Location: "Lalbagh, Dhaka",
			Patient: &PatientProfile{
				Age: 42, Gender: "Male",
				MedicalHistory: "Hypertension, Diabetes Type 2", Allergies: "Penicillin",
				Address: "House No. 25, Road No. 3, Lalbagh",
			},
		},
		{
			ID: 9, Email: "patient3@jobra.com", Password: "patient123", Role: RolePatient,
			Name: "Fatema Khatun", Phone: "+880-1712-345686", Location: "Kamrangirchar, Dhaka",
			Patient: &PatientProfile{
				Age: 28, Gender: "Female",
				MedicalHistory: "Asthma", Allergies: "Shrimp",
				Address: "House No. 8, Road No. 5, Kamrangirchar",
			},
		},
		{
			ID: 10, Email: "patient4@jobra.com", Password: "patient123", Role: RolePatient,
			Name: "Mohammad Selim Mia", Phone: "+880-1712-345687", Location: "Badda, Dhaka",
			Patient: &PatientProfile{
				Age: 55, Gender: "Male",
				MedicalHistory: "Heart disease, High cholesterol", Allergies: "No allergies",
				Address: "House No. 15, Road No. 2, Badda",
			},
		},
		{
			ID: 11, Email: "patient5@jobra.com", Password: "patient123", Role: RolePatient,
			Name: "Nasira Begum", Phone: "+880-1712-345688", Location: "Dhanmondi, Dhaka",
			Patient: &PatientProfile{
				Age: 31, Gender: "Female",
				MedicalHistory: "Thyroid problems", Allergies: "No allergies",
				Address: "House No. 20, Road No. 8, Dhanmondi",
			},
		},
		{
			ID: 12, Email: "patient6@jobra.com", Password: "patient123", Role: RolePatient,
			Name: "Mohammad Abul Kalam", Phone: "+880-1712-345689", Location: "Mirpur, Dhaka",
			Patient: &PatientProfile{
				Age: 38, Gender: "Male",
				MedicalHistory: "Kidney stones", Allergies: "No allergies",
				Address: "House No. 30, Road No. 1, Mirpur",
			},
		},
	}
}

func seedAppointments() []Appointment {
	return []Appointment{
		{
			ID: 1, PatientID: 7, DoctorID: 2,
			PatientName: "Rokhsana Begum", DoctorName: "Dr. Mohammad Abdul Rahman",
			Date: "2024-01-15", Time: "10:00 AM", Status: AppointmentConfirmed,
			Reason: "Regular health checkup",
		},
		{
			ID: 2, PatientID: 8, DoctorID: 3,
			PatientName: "Mohammad Karim Uddin", DoctorName: "Dr. Fatema Begum",
			Date: "2024-01-16", Time: "2:00 PM", Status: AppointmentPending,
			Reason: "Neurology consultation",
		},
		{
			ID: 3, PatientID: 9, DoctorID: 4,
			PatientName: "Fatema Khatun", DoctorName: "Dr. Mohammad Hasan Ali",
			Date: "2024-01-17", Time: "11:30 AM", Status: AppointmentConfirmed,
			Reason: "Knee pain evaluation",
		},
		{
			ID: 4, PatientID: 10, DoctorID: 2,
			PatientName: "Mohammad Selim Mia", DoctorName: "Dr. Mohammad Abdul Rahman",
			Date: "2024-01-18", Time: "9:00 AM", Status: AppointmentConfirmed,
			Reason: "Heart disease follow-up",
		},
		{
			ID: 5, PatientID: 11, DoctorID: 6,
			PatientName: "Nasira Begum", DoctorName: "Dr. Rokhsana Khan",
			Date: "2024-01-19", Time: "3:00 PM", Status: AppointmentPending,
			Reason: "Gynecology consultation",
		},
		{
			ID: 6, PatientID: 12, DoctorID: 4,
			PatientName: "Mohammad Abul Kalam", DoctorName: "Dr. Mohammad Hasan Ali",
			Date: "2024-01-20", Time: "10:30 AM", Status: AppointmentConfirmed,
			Reason: "Kidney stone treatment",
		},
	}
}

func seedReports() []Report {
	return []Report{
		{
			ID: 1, PatientID: 7, DoctorID: 2,
			PatientName: "Rokhsana Begum", DoctorName: "Dr. Mohammad Abdul Rahman",
			Date: "2024-01-10", Type: "Blood Test",
			Results: "All values within normal range", Status: ReportNormal,
		},
		{
			ID: 2, PatientID: 8, DoctorID: 3,
			PatientName: "Mohammad Karim Uddin", DoctorName: "Dr. Fatema Begum",
			Date: "2024-01-08", Type: "MRI Scan",
			Results: "No abnormalities detected", Status: ReportNormal,
		},
		{
			ID: 3, PatientID: 9, DoctorID: 4,
			PatientName: "Fatema Khatun", DoctorName: "Dr. Mohammad Hasan Ali",
			Date: "2024-01-05", Type: "X-Ray",
			Results: "Minor inflammation in left knee", Status: ReportAbnormal,
		},
		{
			ID: 4, PatientID: 10, DoctorID: 2,
			PatientName: "Mohammad Selim Mia", DoctorName: "Dr. Mohammad Abdul Rahman",
			Date: "2024-01-12", Type: "ECG",
			Results: "Heart function normal", Status: ReportNormal,
		},
		{
			ID: 5, PatientID: 11, DoctorID: 6,
			PatientName: "Nasira Begum", DoctorName: "Dr. Rokhsana Khan",
			Date: "2024-01-14", Type: "Thyroid Function Test",
			Results: "Thyroid hormone levels slightly elevated", Status: ReportAbnormal,
		},
		{
			ID: 6, PatientID: 12, DoctorID: 4,
			PatientName: "Mohammad Abul Kalam", DoctorName: "Dr. Mohammad Hasan Ali",
			Date: "2024-01-13", Type: "Kidney Ultrasound",
			Results: "Small stones detected in kidney", Status: ReportAbnormal,
		},
	}
}

func seedReviews() []Review {
	return []Review{
		{
			ID: 1, PatientID: 7, DoctorID: 2,
			PatientName: "Rokhsana Begum", DoctorName: "Dr. Mohammad Abdul Rahman",
			Rating: 5, Comment: "Excellent doctor, very professional and caring.",
			Status: ReviewApproved, Date: "2024-01-12",
		},
		{
			ID: 2, PatientID: 8, DoctorID: 3,
			PatientName: "Mohammad Karim Uddin", DoctorName: "Dr. Fatema Begum",
			Rating: 4, Comment: "Good consultation, but waiting time was long.",
			Status: ReviewPending, Date: "2024-01-11",
		},
		{
			ID: 3, PatientID: 9, DoctorID: 4,
			PatientName: "Fatema Khatun", DoctorName: "Dr. Mohammad Hasan Ali",
			Rating: 5, Comment: "Very thorough examination and clear explanation.",
			Status: ReviewApproved, Date: "2024-01-09",
		},
		{
			ID: 4, PatientID: 10, DoctorID: 2,
			PatientName: "Mohammad Selim Mia", DoctorName: "Dr. Mohammad Abdul Rahman",
			Rating: 5, Comment: "Very skilled and experienced in heart disease treatment.",
			Status: ReviewApproved, Date: "2024-01-08",
		},
		{
			ID: 5, PatientID: 11, DoctorID: 6,
			PatientName: "Nasira Begum", DoctorName: "Dr. Rokhsana Khan",
			Rating: 4, Comment: "Very good as a gynecology specialist.",
			Status: ReviewPending, Date: "2024-01-07",
		},
		{
			ID: 6, PatientID: 12, DoctorID: 4,
			PatientName: "Mohammad Abul Kalam", DoctorName: "Dr. Mohammad Hasan Ali",
			Rating: 5, Comment: "Excellent treatment as an orthopedic specialist.",
			Status: ReviewApproved, Date: "2024-01-06",
		},
	}
}
