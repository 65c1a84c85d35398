package models

import (
	"time"

	"macrofit/internal/nutrition"

	"gorm.io/gorm"
)

// Food is a catalog record maintained by admin tooling. The engine
// treats it as read-only reference data.
type Food struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name         string         `gorm:"index" json:"name" example:"Chicken breast"`
	Category     string         `gorm:"index" json:"category" example:"protein"`
	KcalPerUnit  float64        `json:"kcal_per_unit" example:"110"`
	ProteinUnits float64        `json:"protein_units" example:"1"`
	CarbUnits    float64        `json:"carb_units" example:"0"`
	FatUnits     float64        `json:"fat_units" example:"0.2"`
	VegUnits     float64        `json:"veg_units" example:"0"`
	FruitUnits   float64        `json:"fruit_units" example:"0"`
	GramsPerItem *float64       `gorm:"column:grams_per_item" json:"grams_per_item,omitempty" example:"50"`
	GramsPerCup  *float64       `gorm:"column:grams_per_cup" json:"grams_per_cup,omitempty" example:"140"`
	GramsPerTbsp *float64       `gorm:"column:grams_per_tbsp" json:"grams_per_tbsp,omitempty" example:"15"`
	ItemsPerUnit *float64       `gorm:"column:items_per_unit" json:"items_per_unit,omitempty" example:"1"`
}

func (f *Food) TableName() string {
	return "foods"
}

// Engine validates the stored record into the engine's strict input
// type. Unknown categories and non-positive encodings are boundary
// errors; they never reach the converter.
func (f *Food) Engine() (nutrition.Food, error) {
	category, err := nutrition.ParseCategory(f.Category)
	if err != nil {
		return nutrition.Food{}, err
	}
	return nutrition.Food{
		Category:     category,
		KcalPerUnit:  f.KcalPerUnit,
		ProteinUnits: f.ProteinUnits,
		CarbUnits:    f.CarbUnits,
		FatUnits:     f.FatUnits,
		VegUnits:     f.VegUnits,
		FruitUnits:   f.FruitUnits,
		GramsPerItem: positiveOrNil(f.GramsPerItem),
		GramsPerCup:  positiveOrNil(f.GramsPerCup),
		GramsPerTbsp: positiveOrNil(f.GramsPerTbsp),
		ItemsPerUnit: positiveOrNil(f.ItemsPerUnit),
	}, nil
}

func positiveOrNil(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}
