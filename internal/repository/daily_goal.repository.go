package repository

import (
	"errors"

	"macrofit/internal/models"

	"gorm.io/gorm"
)

type DailyGoalRepository interface {
	FindByUserID(userID uint) (*models.DailyGoal, error)
	Upsert(goal *models.DailyGoal) error
	DeleteByUserID(userID uint) error
}

type dailyGoalRepository struct {
	db *gorm.DB
}

func NewDailyGoalRepository(db *gorm.DB) DailyGoalRepository {
	return &dailyGoalRepository{db}
}

func (r *dailyGoalRepository) FindByUserID(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := r.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Upsert creates the goal row on first save and replaces all targets
// afterwards.
func (r *dailyGoalRepository) Upsert(goal *models.DailyGoal) error {
	var existing models.DailyGoal
	err := r.db.Where("user_id = ?", goal.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(goal).Error
	}
	if err != nil {
		return err
	}
	goal.ID = existing.ID
	goal.CreatedAt = existing.CreatedAt
	return r.db.Save(goal).Error
}

func (r *dailyGoalRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.DailyGoal{}).Error
}
