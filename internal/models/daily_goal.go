package models

import (
	"time"

	"macrofit/internal/nutrition"

	"gorm.io/gorm"
)

// DailyGoal is a user's macro target set. Zero means "no cap" and is
// the default for veg/fruit.
type DailyGoal struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"unique" json:"user_id" example:"1"`
	Calories  float64        `json:"calories" example:"2000"`
	Protein   float64        `json:"protein" example:"6"`
	Carb      float64        `json:"carb" example:"4"`
	Fat       float64        `json:"fat" example:"3"`
	Veg       float64        `json:"veg" example:"0"`
	Fruit     float64        `json:"fruit" example:"2"`
}

func (g *DailyGoal) TableName() string {
	return "daily_goals"
}

func (g *DailyGoal) GoalSet() nutrition.GoalSet {
	return nutrition.GoalSet{
		Calories: g.Calories,
		Protein:  g.Protein,
		Carb:     g.Carb,
		Fat:      g.Fat,
		Veg:      g.Veg,
		Fruit:    g.Fruit,
	}
}

// UpsertGoalRequest replaces the full goal set; targets must be
// non-negative.
type UpsertGoalRequest struct {
	Calories float64 `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carb     float64 `json:"carb" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
	Veg      float64 `json:"veg" binding:"min=0"`
	Fruit    float64 `json:"fruit" binding:"min=0"`
}
