package repository

import (
	"macrofit/internal/models"

	"gorm.io/gorm"
)

type BodyMeasurementRepository interface {
	Create(measurement *models.BodyMeasurement) error
	FindByID(id uint) (*models.BodyMeasurement, error)
	FindAllByUserID(userID uint, limit int) ([]models.BodyMeasurement, error)
	FindLatestByUserID(userID uint) (*models.BodyMeasurement, error)
	Delete(id uint) error
}

type bodyMeasurementRepository struct {
	db *gorm.DB
}

func NewBodyMeasurementRepository(db *gorm.DB) BodyMeasurementRepository {
	return &bodyMeasurementRepository{db}
}

func (r *bodyMeasurementRepository) Create(measurement *models.BodyMeasurement) error {
	return r.db.Create(measurement).Error
}

func (r *bodyMeasurementRepository) FindByID(id uint) (*models.BodyMeasurement, error) {
	var m models.BodyMeasurement
	err := r.db.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *bodyMeasurementRepository) FindAllByUserID(userID uint, limit int) ([]models.BodyMeasurement, error) {
	var measurements []models.BodyMeasurement
	q := r.db.Where("user_id = ?", userID).Order("measured_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&measurements).Error
	return measurements, err
}

func (r *bodyMeasurementRepository) FindLatestByUserID(userID uint) (*models.BodyMeasurement, error) {
	var m models.BodyMeasurement
	err := r.db.Where("user_id = ?", userID).Order("measured_at DESC").First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *bodyMeasurementRepository) Delete(id uint) error {
	return r.db.Delete(&models.BodyMeasurement{}, id).Error
}
