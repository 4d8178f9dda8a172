package services

import (
	"HealthBook/models"
	"context"
	"errors"
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrMissingFields is returned when a booking request lacks a required field.
var ErrMissingFields = errors.New("all fields are required")

// AppointmentStore is the persistence the appointment service depends on.
type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error)
}

type AppointmentService struct {
	repository AppointmentStore
}

func NewAppointmentService(repository AppointmentStore) *AppointmentService {
	return &AppointmentService{repository: repository}
}

// ValidateRequest checks that every booking field is present.
func ValidateRequest(req models.AppointmentRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.DoctorID, validation.Required),
		validation.Field(&req.PatientName, validation.Required),
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.AppointmentDate, validation.Required),
		validation.Field(&req.AppointmentTime, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v", err)
		return ErrMissingFields
	}
	return nil
}

// Book validates the request and stores a scheduled appointment for it. Nothing is written when
// validation fails.
func (s *AppointmentService) Book(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		DoctorID:        req.DoctorID,
		PatientName:     req.PatientName,
		Email:           req.Email,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          models.StatusScheduled,
	}
	if err := s.repository.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	return s.repository.ListByDoctor(ctx, doctorID)
}
