package services

import (
	"errors"
	"log"
	"time"

	"macrofit/internal/models"
	"macrofit/internal/nutrition"
	"macrofit/internal/repository"

	"gorm.io/gorm"
)

// SummaryService recomputes the per-meal and day totals for a
// user-day. Totals are projections over the food_logs rows and are
// never stored as a source of truth.
type SummaryService struct {
	logRepo  repository.FoodLogRepository
	goalRepo repository.DailyGoalRepository
}

func NewSummaryService(logRepo repository.FoodLogRepository, goalRepo repository.DailyGoalRepository) *SummaryService {
	return &SummaryService{
		logRepo:  logRepo,
		goalRepo: goalRepo,
	}
}

// BuildDaySummary loads a snapshot of the day's logs and folds them in
// insertion order. Rows that no longer parse (a meal type retired from
// the app, for instance) are skipped and counted; one bad item never
// blocks the rest of the day.
func (s *SummaryService) BuildDaySummary(userID uint, date time.Time) (*models.DaySummaryResponse, error) {
	logs, err := s.logRepo.FindByUserIDAndDate(userID, date)
	if err != nil {
		return nil, err
	}

	entries := make([]nutrition.Entry, 0, len(logs))
	skipped := 0
	for _, row := range logs {
		entry, err := row.Entry()
		if err != nil {
			log.Printf("skipping food log %d for user %d: %v", row.ID, userID, err)
			skipped++
			continue
		}
		entries = append(entries, entry)
	}

	summary := nutrition.Summarize(entries)

	response := &models.DaySummaryResponse{
		Date:       date.Format("2006-01-02"),
		Meals:      summary.Meals,
		Day:        summary.Day,
		Skipped:    skipped,
		ComputedAt: time.Now(),
	}

	goal, err := s.goalRepo.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// No goals configured; totals are still served.
	} else {
		report := nutrition.Evaluate(summary.Day, goal.GoalSet())
		response.Goals = &report
	}

	return response, nil
}

// BuildRangeSummary folds a span of days into one summary per calendar
// day that has logs, in date order. The goal set is looked up once and
// evaluated against every day in the span.
func (s *SummaryService) BuildRangeSummary(userID uint, start, end time.Time) (*models.RangeSummaryResponse, error) {
	logs, err := s.logRepo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	var goalSet *nutrition.GoalSet
	goal, err := s.goalRepo.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		gs := goal.GoalSet()
		goalSet = &gs
	}

	type dayGroup struct {
		entries []nutrition.Entry
		skipped int
	}
	var order []string
	groups := make(map[string]*dayGroup)
	for _, row := range logs {
		key := row.LogDate.Format("2006-01-02")
		g, ok := groups[key]
		if !ok {
			g = &dayGroup{}
			groups[key] = g
			order = append(order, key)
		}
		entry, err := row.Entry()
		if err != nil {
			log.Printf("skipping food log %d for user %d: %v", row.ID, userID, err)
			g.skipped++
			continue
		}
		g.entries = append(g.entries, entry)
	}

	response := &models.RangeSummaryResponse{
		Start:      start.Format("2006-01-02"),
		End:        end.Format("2006-01-02"),
		ComputedAt: time.Now(),
	}

	for _, key := range order {
		g := groups[key]
		summary := nutrition.Summarize(g.entries)
		day := models.DaySummaryResponse{
			Date:       key,
			Meals:      summary.Meals,
			Day:        summary.Day,
			Skipped:    g.skipped,
			ComputedAt: response.ComputedAt,
		}
		if goalSet != nil {
			report := nutrition.Evaluate(summary.Day, *goalSet)
			day.Goals = &report
		}
		response.Days = append(response.Days, day)
	}

	return response, nil
}
