package repositories

import (
	"HealthBook/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppointmentCachePattern matches every key the appointment repository writes.
const AppointmentCachePattern = "appointments_cache*"

type AppointmentRepository struct {
	db    *gorm.DB
	cache Cache
	ttl   time.Duration
}

func NewAppointmentRepository(db *gorm.DB, cache Cache, ttl time.Duration) *AppointmentRepository {
	return &AppointmentRepository{db: db, cache: cache, ttl: ttl}
}

// Create stores the appointment if its doctor exists and its slot is free.
// The slot check and the insert are one statement, guarded by idx_appointment_slot, so concurrent
// bookings of the same slot cannot both succeed.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// Validate the Status field
	if appointment.Status != models.StatusScheduled && appointment.Status != models.StatusFulfilled && appointment.Status != models.StatusCancelled {
		return errors.New("invalid status value")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Doctor{}).Where("id = ?", appointment.DoctorID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check doctor: %w", err)
		}
		if count == 0 {
			return ErrDoctorNotFound
		}

		result := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(appointment)
		if result.Error != nil {
			return fmt.Errorf("failed to create appointment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSlotTaken
		}
		return nil
	})
	if err != nil {
		return err
	}

	dropCached(ctx, r.cache, r.getAppointmentsCacheKey(appointment.DoctorID))
	return nil
}

// ListByDoctor returns the doctor's appointments ordered by date, then time.
func (r *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cacheKey := r.getAppointmentsCacheKey(doctorID)
	var appointments []models.Appointment
	if loadCached(ctx, r.cache, cacheKey, &appointments) {
		return appointments, nil
	}

	appointments = []models.Appointment{}
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("appointment_date ASC, appointment_time ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}

	storeCached(ctx, r.cache, cacheKey, appointments, r.ttl)
	return appointments, nil
}

func (r *AppointmentRepository) getAppointmentsCacheKey(doctorID uint) string {
	return fmt.Sprintf("appointments_cache:%d", doctorID)
}
