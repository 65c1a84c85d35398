package repository

import (
	"macrofit/internal/models"

	"gorm.io/gorm"
)

type FoodRepository interface {
	Create(food *models.Food) error
	FindByID(id uint) (*models.Food, error)
	FindAll(limit int) ([]models.Food, error)
	FindByCategory(category string) ([]models.Food, error)
	SearchByName(query string, limit int) ([]models.Food, error)
	Update(food *models.Food) error
	Delete(id uint) error
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db}
}

func (r *foodRepository) Create(food *models.Food) error {
	return r.db.Create(food).Error
}

func (r *foodRepository) FindByID(id uint) (*models.Food, error) {
	var food models.Food
	err := r.db.First(&food, id).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) FindAll(limit int) ([]models.Food, error) {
	var foods []models.Food
	q := r.db.Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&foods).Error
	return foods, err
}

func (r *foodRepository) FindByCategory(category string) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Where("category = ?", category).Order("name ASC").Find(&foods).Error
	return foods, err
}

func (r *foodRepository) SearchByName(query string, limit int) ([]models.Food, error) {
	var foods []models.Food
	q := r.db.Where("name ILIKE ?", "%"+query+"%").Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&foods).Error
	return foods, err
}

func (r *foodRepository) Update(food *models.Food) error {
	return r.db.Save(food).Error
}

func (r *foodRepository) Delete(id uint) error {
	return r.db.Delete(&models.Food{}, id).Error
}
