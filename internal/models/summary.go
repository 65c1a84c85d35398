package models

import (
	"time"

	"macrofit/internal/nutrition"
)

// SummaryRefreshRequest asks the summary worker to recompute and
// re-cache one user-day projection.
type SummaryRefreshRequest struct {
	UserID uint      `json:"user_id"`
	Date   time.Time `json:"date"`
}

// DaySummaryResponse is the cached/served day projection: per-meal and
// day totals plus the goal evaluation. Skipped counts rows whose
// stored meal type no longer parses; they are excluded, not fatal.
type DaySummaryResponse struct {
	Date       string                `json:"date"`
	Meals      []nutrition.MealTotal `json:"meals"`
	Day        nutrition.Totals      `json:"day"`
	Goals      *nutrition.GoalReport `json:"goals,omitempty"`
	Skipped    int                   `json:"skipped_items,omitempty"`
	ComputedAt time.Time             `json:"computed_at"`
}

// RangeSummaryResponse is the day-by-day projection over a date span,
// one entry per calendar day that has logs.
type RangeSummaryResponse struct {
	Start      string               `json:"start"`
	End        string               `json:"end"`
	Days       []DaySummaryResponse `json:"days"`
	ComputedAt time.Time            `json:"computed_at"`
}

// SummaryUpdatedEvent is published to the message broker after a
// refresh so downstream consumers (push pipeline, admin dashboards)
// can react without polling.
type SummaryUpdatedEvent struct {
	UserID     uint      `json:"user_id"`
	Date       string    `json:"date"`
	Kcal       float64   `json:"kcal"`
	OverGoal   bool      `json:"over_goal"`
	ComputedAt time.Time `json:"computed_at"`
}
