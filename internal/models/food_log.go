package models

import (
	"time"

	"macrofit/internal/nutrition"

	"gorm.io/gorm"
)

// FoodLog is one logged item: the user's quantity plus the full
// contribution snapshot computed from it. The snapshot is immutable —
// a quantity edit recomputes every field from the food record, never
// patches single values.
type FoodLog struct {
	ID                uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt         time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt         time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID            uint           `gorm:"index" json:"user_id" example:"1"`
	User              User           `gorm:"foreignKey:UserID" json:"-"`
	FoodID            uint           `gorm:"index" json:"food_id" example:"1"`
	Food              Food           `gorm:"foreignKey:FoodID" json:"-"`
	MealType          string         `gorm:"index" json:"meal_type" example:"breakfast"`
	LogDate           time.Time      `gorm:"index;type:date" json:"log_date" example:"2023-01-01"`
	Quantity          float64        `json:"quantity" example:"150"`
	MeasurementMethod string         `gorm:"column:measurement_method" json:"measurement_method" example:"grams"`
	Servings          float64        `json:"servings" example:"3"`
	Kcal              float64        `json:"kcal" example:"330"`
	ProteinUnits      float64        `json:"protein_units" example:"3"`
	CarbUnits         float64        `json:"carb_units" example:"0"`
	FatUnits          float64        `json:"fat_units" example:"0.6"`
	VegUnits          float64        `json:"veg_units" example:"0"`
	FruitUnits        float64        `json:"fruit_units" example:"0"`
}

func (l *FoodLog) TableName() string {
	return "food_logs"
}

// ApplyContribution overwrites the snapshot fields from a freshly
// computed contribution.
func (l *FoodLog) ApplyContribution(c nutrition.Contribution) {
	l.Quantity = c.Quantity
	l.MeasurementMethod = c.Method.String()
	l.Servings = c.Servings
	l.Kcal = c.Kcal
	l.ProteinUnits = c.ProteinUnits
	l.CarbUnits = c.CarbUnits
	l.FatUnits = c.FatUnits
	l.VegUnits = c.VegUnits
	l.FruitUnits = c.FruitUnits
}

// Entry rebuilds the aggregation entry for this row. Rows with meal
// types that no longer parse are reported via the error so callers can
// skip them without dropping the rest of the day.
func (l *FoodLog) Entry() (nutrition.Entry, error) {
	meal, err := nutrition.ParseMealType(l.MealType)
	if err != nil {
		return nutrition.Entry{}, err
	}
	return nutrition.Entry{
		Meal: meal,
		Contribution: nutrition.Contribution{
			Quantity:     l.Quantity,
			Method:       nutrition.MeasurementMethod(l.MeasurementMethod),
			Servings:     l.Servings,
			Kcal:         l.Kcal,
			ProteinUnits: l.ProteinUnits,
			CarbUnits:    l.CarbUnits,
			FatUnits:     l.FatUnits,
			VegUnits:     l.VegUnits,
			FruitUnits:   l.FruitUnits,
		},
	}, nil
}

// CreateFoodLogRequest is the log-time payload. Quantity arrives as a
// number already; text-field coercion happens client-side and is
// re-validated here through binding plus the converter.
type CreateFoodLogRequest struct {
	FoodID            uint    `json:"food_id" binding:"required"`
	MealType          string  `json:"meal_type" binding:"required"`
	LogDate           string  `json:"log_date" binding:"required" example:"2023-01-01"`
	Quantity          float64 `json:"quantity" binding:"required"`
	MeasurementMethod string  `json:"measurement_method" binding:"required"`
}

// UpdateFoodLogRequest carries a quantity edit. The measurement method
// may change together with the quantity.
type UpdateFoodLogRequest struct {
	Quantity          float64 `json:"quantity" binding:"required"`
	MeasurementMethod string  `json:"measurement_method,omitempty"`
}
