package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"macrofit/internal/models"
	"macrofit/internal/nutrition"
	"macrofit/internal/repository"
	"macrofit/internal/services"

	"github.com/gin-gonic/gin"
)

type FoodLogController struct {
	logRepo   repository.FoodLogRepository
	foodRepo  repository.FoodRepository
	refresher services.SummaryRefresher
}

func NewFoodLogController(
	logRepo repository.FoodLogRepository,
	foodRepo repository.FoodRepository,
	refresher services.SummaryRefresher,
) *FoodLogController {
	return &FoodLogController{
		logRepo:   logRepo,
		foodRepo:  foodRepo,
		refresher: refresher,
	}
}

func (flc *FoodLogController) userID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
			"error":   "Missing user context",
		})
		return 0, false
	}
	return raw.(uint), true
}

// scheduleRefresh requeues the day projection; a full queue degrades to
// lazy recompute on the next summary read.
func (flc *FoodLogController) scheduleRefresh(userID uint, date time.Time) {
	if flc.refresher == nil {
		return
	}
	_ = flc.refresher.Enqueue(models.SummaryRefreshRequest{UserID: userID, Date: date})
}

func conversionStatus(err error) int {
	if errors.Is(err, nutrition.ErrInvalidQuantity) || errors.Is(err, nutrition.ErrNoMeasurement) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateFoodLog godoc
// @Summary Log a food item
// @Description Convert the entered quantity into a contribution snapshot and persist it
// @Tags log
// @Accept json
// @Produce json
// @Param log body models.CreateFoodLogRequest true "Log data"
// @Success 201 {object} map[string]interface{} "Item logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Router /log [post]
func (flc *FoodLogController) CreateFoodLog(c *gin.Context) {
	userID, ok := flc.userID(c)
	if !ok {
		return
	}

	var req models.CreateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	meal, err := nutrition.ParseMealType(req.MealType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal type",
			"error":   err.Error(),
		})
		return
	}

	method, err := nutrition.ParseMeasurementMethod(req.MeasurementMethod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid measurement method",
			"error":   err.Error(),
		})
		return
	}

	logDate, err := time.Parse("2006-01-02", req.LogDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid log date",
			"error":   "Date must be formatted as YYYY-MM-DD",
		})
		return
	}

	food, err := flc.foodRepo.FindByID(req.FoodID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food not found",
			"error":   err.Error(),
		})
		return
	}

	engineFood, err := food.Engine()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Food record is invalid",
			"error":   err.Error(),
		})
		return
	}

	contribution, err := nutrition.Convert(engineFood, method, req.Quantity)
	if err != nil {
		c.JSON(conversionStatus(err), gin.H{
			"status":  "error",
			"message": "Failed to convert quantity",
			"error":   err.Error(),
		})
		return
	}

	entry := models.FoodLog{
		UserID:   userID,
		FoodID:   food.ID,
		MealType: meal.String(),
		LogDate:  logDate,
	}
	entry.ApplyContribution(contribution)

	if err := flc.logRepo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log item",
			"error":   err.Error(),
		})
		return
	}

	flc.scheduleRefresh(userID, logDate)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Item logged successfully",
		"data":    entry,
	})
}

// UpdateFoodLog godoc
// @Summary Edit a logged item's quantity
// @Description Recompute the whole contribution snapshot from the food record
// @Tags log
// @Accept json
// @Produce json
// @Param id path int true "Log ID"
// @Param log body models.UpdateFoodLogRequest true "New quantity"
// @Success 200 {object} map[string]interface{} "Item updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Log not found"
// @Router /log/{id} [put]
func (flc *FoodLogController) UpdateFoodLog(c *gin.Context) {
	userID, ok := flc.userID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid log ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req models.UpdateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	entry, err := flc.logRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Log not found",
			"error":   err.Error(),
		})
		return
	}

	if entry.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Log belongs to another user",
			"error":   "Forbidden",
		})
		return
	}

	method := nutrition.MeasurementMethod(entry.MeasurementMethod)
	if req.MeasurementMethod != "" {
		method, err = nutrition.ParseMeasurementMethod(req.MeasurementMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid measurement method",
				"error":   err.Error(),
			})
			return
		}
	}

	food, err := flc.foodRepo.FindByID(entry.FoodID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food not found",
			"error":   err.Error(),
		})
		return
	}

	engineFood, err := food.Engine()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Food record is invalid",
			"error":   err.Error(),
		})
		return
	}

	contribution, err := nutrition.Convert(engineFood, method, req.Quantity)
	if err != nil {
		c.JSON(conversionStatus(err), gin.H{
			"status":  "error",
			"message": "Failed to convert quantity",
			"error":   err.Error(),
		})
		return
	}

	entry.ApplyContribution(contribution)

	if err := flc.logRepo.Update(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update item",
			"error":   err.Error(),
		})
		return
	}

	flc.scheduleRefresh(userID, entry.LogDate)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Item updated successfully",
		"data":    entry,
	})
}

// DeleteFoodLog godoc
// @Summary Delete a logged item
// @Tags log
// @Produce json
// @Param id path int true "Log ID"
// @Success 200 {object} map[string]interface{} "Item deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid log ID"
// @Failure 404 {object} map[string]interface{} "Log not found"
// @Router /log/{id} [delete]
func (flc *FoodLogController) DeleteFoodLog(c *gin.Context) {
	userID, ok := flc.userID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid log ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	entry, err := flc.logRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Log not found",
			"error":   err.Error(),
		})
		return
	}

	if entry.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Log belongs to another user",
			"error":   "Forbidden",
		})
		return
	}

	if err := flc.logRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete item",
			"error":   err.Error(),
		})
		return
	}

	flc.scheduleRefresh(userID, entry.LogDate)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Item deleted successfully",
	})
}

// GetFoodLogsByDate godoc
// @Summary List logged items for a day
// @Tags log
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Items retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Router /log [get]
func (flc *FoodLogController) GetFoodLogsByDate(c *gin.Context) {
	userID, ok := flc.userID(c)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "Date must be formatted as YYYY-MM-DD",
		})
		return
	}

	logs, err := flc.logRepo.FindByUserIDAndDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve items",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Items retrieved successfully",
		"data":    logs,
	})
}
