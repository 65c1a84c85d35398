package repository

import (
	"time"

	"macrofit/internal/models"

	"gorm.io/gorm"
)

type FoodLogRepository interface {
	Create(log *models.FoodLog) error
	FindByID(id uint) (*models.FoodLog, error)
	Update(log *models.FoodLog) error
	Delete(id uint) error
	FindByUserIDAndDate(userID uint, date time.Time) ([]models.FoodLog, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.FoodLog, error)
}

type foodLogRepository struct {
	db *gorm.DB
}

func NewFoodLogRepository(db *gorm.DB) FoodLogRepository {
	return &foodLogRepository{db}
}

func (r *foodLogRepository) Create(log *models.FoodLog) error {
	return r.db.Create(log).Error
}

func (r *foodLogRepository) FindByID(id uint) (*models.FoodLog, error) {
	var entry models.FoodLog
	err := r.db.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *foodLogRepository) Update(log *models.FoodLog) error {
	return r.db.Save(log).Error
}

func (r *foodLogRepository) Delete(id uint) error {
	return r.db.Delete(&models.FoodLog{}, id).Error
}

// FindByUserIDAndDate returns the user's logged items for one calendar
// day in insertion order, which keeps aggregation deterministic.
func (r *foodLogRepository) FindByUserIDAndDate(userID uint, date time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := r.db.Where("user_id = ? AND log_date = ?", userID, date.Format("2006-01-02")).
		Order("id ASC").
		Find(&logs).Error
	return logs, err
}

func (r *foodLogRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := r.db.Where("user_id = ? AND log_date BETWEEN ? AND ?",
		userID, startDate.Format("2006-01-02"), endDate.Format("2006-01-02")).
		Order("log_date ASC, id ASC").
		Find(&logs).Error
	return logs, err
}
