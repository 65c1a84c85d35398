package models

import (
	"time"

	"macrofit/internal/anthro"

	"gorm.io/gorm"
)

type UserProfile struct {
	ID               uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt        time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt        time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID           uint           `gorm:"unique" json:"user_id" example:"1"`
	Gender           *string        `json:"gender" example:"male"`
	Age              *int           `json:"age" example:"30"`
	HeightCm         *float64       `json:"height_cm" example:"180"`
	WeightKg         *float64       `json:"weight_kg" example:"80"`
	ManualBodyFatPct *float64       `gorm:"column:manual_body_fat_pct" json:"manual_body_fat_pct" example:"18.5"`
}

// AnthroProfile maps the stored profile onto the estimator's input,
// keeping absent fields absent.
func (p *UserProfile) AnthroProfile() anthro.Profile {
	profile := anthro.Profile{
		Age:      p.Age,
		HeightCm: p.HeightCm,
		WeightKg: p.WeightKg,
	}
	if p.Gender != nil {
		g := anthro.Gender(*p.Gender)
		if g.IsValid() {
			profile.Gender = &g
		}
	}
	return profile
}
