package repositories

import (
	"HealthBook/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	doctorsCacheKey = "doctors_cache"
	// DoctorCachePattern matches every key the doctor repository writes.
	DoctorCachePattern = "doctor*_cache*"
)

type DoctorRepository struct {
	db    *gorm.DB
	cache Cache
	ttl   time.Duration
}

func NewDoctorRepository(db *gorm.DB, cache Cache, ttl time.Duration) *DoctorRepository {
	return &DoctorRepository{db: db, cache: cache, ttl: ttl}
}

// GetAll returns every doctor ordered by id.
func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doctors []models.Doctor
	if loadCached(ctx, r.cache, doctorsCacheKey, &doctors) {
		return doctors, nil
	}

	doctors = []models.Doctor{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to get all doctors: %w", err)
	}

	storeCached(ctx, r.cache, doctorsCacheKey, doctors, r.ttl)
	return doctors, nil
}

// GetDetail returns the doctor with its schedules, or nil when there is no such doctor.
func (r *DoctorRepository) GetDetail(ctx context.Context, id uint) (*models.DoctorDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cacheKey := r.getDoctorCacheKey(id)
	var cached models.DoctorDetail
	if loadCached(ctx, r.cache, cacheKey, &cached) {
		return &cached, nil
	}

	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	schedules := doctor.Schedules
	if schedules == nil {
		schedules = []models.DoctorSchedule{}
	}
	doctor.Schedules = nil
	detail := &models.DoctorDetail{Doctor: doctor, Schedules: schedules}

	storeCached(ctx, r.cache, cacheKey, detail, r.ttl)
	return detail, nil
}

func (r *DoctorRepository) getDoctorCacheKey(id uint) string {
	return fmt.Sprintf("doctor_cache:%d", id)
}
