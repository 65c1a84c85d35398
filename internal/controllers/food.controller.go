package controllers

import (
	"net/http"
	"strconv"

	"macrofit/internal/models"
	"macrofit/internal/nutrition"
	"macrofit/internal/repository"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	repo repository.FoodRepository
}

func NewFoodController(repo repository.FoodRepository) *FoodController {
	return &FoodController{repo: repo}
}

// CreateFood godoc
// @Summary Create a food record
// @Description Create a catalog food with macro rates and measurement encodings
// @Tags food
// @Accept json
// @Produce json
// @Param food body models.Food true "Food data"
// @Success 201 {object} map[string]interface{} "Food created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create food"
// @Router /food [post]
func (fc *FoodController) CreateFood(c *gin.Context) {
	var food models.Food

	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Categories and encodings are validated up front so no malformed
	// reference data reaches the conversion engine later.
	if _, err := food.Engine(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food record",
			"error":   err.Error(),
		})
		return
	}

	if err := fc.repo.Create(&food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create food",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food created successfully",
		"data":    food,
	})
}

// GetFoods godoc
// @Summary List foods
// @Description List catalog foods, optionally filtered by category or name query
// @Tags food
// @Produce json
// @Param category query string false "Food category"
// @Param q query string false "Name search"
// @Success 200 {object} map[string]interface{} "Foods retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve foods"
// @Router /food [get]
func (fc *FoodController) GetFoods(c *gin.Context) {
	var (
		foods []models.Food
		err   error
	)

	if category := c.Query("category"); category != "" {
		if _, perr := nutrition.ParseCategory(category); perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid category",
				"error":   perr.Error(),
			})
			return
		}
		foods, err = fc.repo.FindByCategory(category)
	} else if query := c.Query("q"); query != "" {
		foods, err = fc.repo.SearchByName(query, 50)
	} else {
		foods, err = fc.repo.FindAll(200)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve foods",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Foods retrieved successfully",
		"data":    foods,
	})
}

// GetFoodByID godoc
// @Summary Get a food by ID
// @Tags food
// @Produce json
// @Param id path int true "Food ID"
// @Success 200 {object} map[string]interface{} "Food retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food ID"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Router /food/{id} [get]
func (fc *FoodController) GetFoodByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	food, err := fc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food retrieved successfully",
		"data":    food,
	})
}

// GetFoodMeasurements godoc
// @Summary Get available measurement methods for a food
// @Description Resolve which measurement methods the food offers, with the serving narrative
// @Tags food
// @Produce json
// @Param id path int true "Food ID"
// @Success 200 {object} map[string]interface{} "Measurements resolved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food ID"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Router /food/{id}/measurements [get]
func (fc *FoodController) GetFoodMeasurements(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	food, err := fc.repo.FindByID(uint(id))
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

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measurements resolved successfully",
		"data": gin.H{
			"food_id":             food.ID,
			"methods":             nutrition.Methods(engineFood),
			"serving_description": nutrition.ServingDescription(engineFood),
		},
	})
}

// UpdateFood godoc
// @Summary Update a food record
// @Tags food
// @Accept json
// @Produce json
// @Param id path int true "Food ID"
// @Param food body models.Food true "Food data"
// @Success 200 {object} map[string]interface{} "Food updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Router /food/{id} [put]
func (fc *FoodController) UpdateFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := fc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food not found",
			"error":   err.Error(),
		})
		return
	}

	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	food.ID = existing.ID
	food.CreatedAt = existing.CreatedAt

	if _, err := food.Engine(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food record",
			"error":   err.Error(),
		})
		return
	}

	if err := fc.repo.Update(&food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update food",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food updated successfully",
		"data":    food,
	})
}

// DeleteFood godoc
// @Summary Delete a food record
// @Tags food
// @Produce json
// @Param id path int true "Food ID"
// @Success 200 {object} map[string]interface{} "Food deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete food"
// @Router /food/{id} [delete]
func (fc *FoodController) DeleteFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := fc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete food",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food deleted successfully",
	})
}
