package review

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus  = errors.New("status must be pending, approved or rejected")
	ErrUnknownPatient = errors.New("review principal is not a known patient")
)
