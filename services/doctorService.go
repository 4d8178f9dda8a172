package services

import (
	"HealthBook/models"
	"context"
)

// DoctorStore is the persistence the doctor service depends on.
type DoctorStore interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	GetDetail(ctx context.Context, id uint) (*models.DoctorDetail, error)
}

type DoctorService struct {
	repository DoctorStore
}

func NewDoctorService(repository DoctorStore) *DoctorService {
	return &DoctorService{repository: repository}
}

func (s *DoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.repository.GetAll(ctx)
}

// GetDetail returns the doctor merged with its schedules, or nil when the doctor does not exist.
func (s *DoctorService) GetDetail(ctx context.Context, id uint) (*models.DoctorDetail, error) {
	return s.repository.GetDetail(ctx, id)
}
