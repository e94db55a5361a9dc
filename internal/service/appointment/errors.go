package appointment

import "errors"

var (
	ErrMissingFields  = errors.New("doctor, date and time are required")
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidSlot    = errors.New("time is not one of the offered slots")
	ErrUnknownPatient = errors.New("booking principal is not a known patient")
)
