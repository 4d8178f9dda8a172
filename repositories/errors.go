package repositories

import "errors"

var (
	// ErrDoctorNotFound means the referenced doctor does not exist.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrSlotTaken means another appointment already holds the doctor/date/time slot.
	ErrSlotTaken = errors.New("time slot already booked")
)
