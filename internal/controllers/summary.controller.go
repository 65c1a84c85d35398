package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"macrofit/internal/cache"
	"macrofit/internal/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	service *services.SummaryService
	cache   *cache.RedisClient
}

func NewSummaryController(service *services.SummaryService, redisCache *cache.RedisClient) *SummaryController {
	return &SummaryController{
		service: service,
		cache:   redisCache,
	}
}

// GetDaySummary godoc
// @Summary Get the day summary
// @Description Per-meal and day totals with goal progress for one calendar day
// @Tags summary
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to build summary"
// @Router /summary/day [get]
func (sc *SummaryController) GetDaySummary(c *gin.Context) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
			"error":   "Missing user context",
		})
		return
	}
	userID := raw.(uint)

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "Date must be formatted as YYYY-MM-DD",
		})
		return
	}
	dateKey := date.Format("2006-01-02")

	if sc.cache != nil {
		cached, found, err := sc.cache.GetDaySummary(userID, dateKey)
		if err != nil {
			log.Printf("summary cache read failed for user %d: %v", userID, err)
		} else if found {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Summary retrieved successfully",
				"data":    cached,
				"cached":  true,
			})
			return
		}
	}

	summary, err := sc.service.BuildDaySummary(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build summary",
			"error":   err.Error(),
		})
		return
	}

	if sc.cache != nil {
		if err := sc.cache.StoreDaySummary(userID, dateKey, summary, 15*time.Minute); err != nil {
			log.Printf("summary cache write failed for user %d: %v", userID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data":    summary,
	})
}

// maxSummaryRangeDays caps how many days one range request may span.
const maxSummaryRangeDays = 31

// GetRangeSummary godoc
// @Summary Get day-by-day summaries for a date range
// @Description One summary per day with logs in the span, each with goal progress
// @Tags summary
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Summaries retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 500 {object} map[string]interface{} "Failed to build summaries"
// @Router /summary/range [get]
func (sc *SummaryController) GetRangeSummary(c *gin.Context) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
			"error":   "Missing user context",
		})
		return
	}
	userID := raw.(uint)

	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid start date",
			"error":   "Date must be formatted as YYYY-MM-DD",
		})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid end date",
			"error":   "Date must be formatted as YYYY-MM-DD",
		})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date range",
			"error":   "End date must not precede start date",
		})
		return
	}
	if end.Sub(start) > maxSummaryRangeDays*24*time.Hour {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Date range too large",
			"error":   fmt.Sprintf("Range must not exceed %d days", maxSummaryRangeDays),
		})
		return
	}

	// Ranges are recomputed on every request; only single days are
	// cached and re-warmed by the worker.
	summary, err := sc.service.BuildRangeSummary(userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build summaries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summaries retrieved successfully",
		"data":    summary,
	})
}
