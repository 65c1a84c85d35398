package models

import (
	"time"

	"gorm.io/gorm"
)

// BodyMeasurement is one skinfold session with its derived estimates,
// persisted so the history can be charted.
type BodyMeasurement struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"index" json:"user_id" example:"1"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	MeasuredAt    time.Time      `gorm:"index" json:"measured_at" example:"2023-01-01T08:00:00Z"`
	WeightKg      float64        `json:"weight_kg" example:"80"`
	BicepsMm      float64        `json:"biceps_mm" example:"8"`
	TricepsMm     float64        `json:"triceps_mm" example:"12"`
	SubscapularMm float64        `json:"subscapular_mm" example:"10"`
	SuprailiacMm  float64        `json:"suprailiac_mm" example:"10"`
	BodyDensity   *float64       `json:"body_density,omitempty" example:"1.0618"`
	BodyFatPct    float64        `json:"body_fat_pct" example:"16.17"`
	FatSource     string         `gorm:"column:fat_source" json:"fat_source" example:"calculated"`
	FatMassKg     float64        `json:"fat_mass_kg" example:"12.94"`
	LeanMassKg    float64        `json:"lean_mass_kg" example:"67.06"`
}

func (m *BodyMeasurement) TableName() string {
	return "body_measurements"
}

// SkinfoldRequest is a caliper session submission. Weight is optional
// and falls back to the profile weight when absent.
type SkinfoldRequest struct {
	BicepsMm      float64  `json:"biceps_mm" binding:"required"`
	TricepsMm     float64  `json:"triceps_mm" binding:"required"`
	SubscapularMm float64  `json:"subscapular_mm" binding:"required"`
	SuprailiacMm  float64  `json:"suprailiac_mm" binding:"required"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	MeasuredAt    string   `json:"measured_at,omitempty" example:"2023-01-01T08:00:00Z"`
}
