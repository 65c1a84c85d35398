package controllers

import (
	"errors"
	"log"
	"net/http"

	"macrofit/internal/models"
	"macrofit/internal/repository"

	"github.com/gin-gonic/gin"

	"gorm.io/gorm"
)

// SummaryCacheInvalidator drops a user's cached day summaries after a
// change that stales every cached report at once, such as a goal edit.
type SummaryCacheInvalidator interface {
	InvalidateUserSummaries(userID uint) error
}

type GoalController struct {
	repo        repository.DailyGoalRepository
	invalidator SummaryCacheInvalidator
}

func NewGoalController(repo repository.DailyGoalRepository, invalidator SummaryCacheInvalidator) *GoalController {
	return &GoalController{repo: repo, invalidator: invalidator}
}

// invalidateSummaries is best-effort; a failed invalidation only means
// cached reports keep the old goals until their TTL runs out.
func (gc *GoalController) invalidateSummaries(userID uint) {
	if gc.invalidator == nil {
		return
	}
	if err := gc.invalidator.InvalidateUserSummaries(userID); err != nil {
		log.Printf("failed to invalidate cached summaries for user %d: %v", userID, err)
	}
}

// GetGoals godoc
// @Summary Get the user's goal set
// @Tags goal
// @Produce json
// @Success 200 {object} map[string]interface{} "Goals retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Goals not configured"
// @Router /goal [get]
func (gc *GoalController) GetGoals(c *gin.Context) {
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

	goal, err := gc.repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Goals not configured",
				"error":   "No goal set for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve goals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goals retrieved successfully",
		"data":    goal,
	})
}

// UpsertGoals godoc
// @Summary Set the user's goal set
// @Description Replace the full target set; zero means no cap
// @Tags goal
// @Accept json
// @Produce json
// @Param goals body models.UpsertGoalRequest true "Goal targets"
// @Success 200 {object} map[string]interface{} "Goals saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /goal [put]
func (gc *GoalController) UpsertGoals(c *gin.Context) {
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

	var req models.UpsertGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	goal := models.DailyGoal{
		UserID:   userID,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carb:     req.Carb,
		Fat:      req.Fat,
		Veg:      req.Veg,
		Fruit:    req.Fruit,
	}

	if err := gc.repo.Upsert(&goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save goals",
			"error":   err.Error(),
		})
		return
	}

	// Cached day summaries embed the goal report, so they are all stale
	// the moment the targets change.
	gc.invalidateSummaries(userID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goals saved successfully",
		"data":    goal,
	})
}

// DeleteGoals godoc
// @Summary Clear the user's goal set
// @Description Remove all targets; summaries report totals without a goal section
// @Tags goal
// @Produce json
// @Success 200 {object} map[string]interface{} "Goals cleared successfully"
// @Failure 500 {object} map[string]interface{} "Failed to clear goals"
// @Router /goal [delete]
func (gc *GoalController) DeleteGoals(c *gin.Context) {
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

	if err := gc.repo.DeleteByUserID(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to clear goals",
			"error":   err.Error(),
		})
		return
	}

	gc.invalidateSummaries(userID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goals cleared successfully",
	})
}
