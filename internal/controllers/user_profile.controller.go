package controllers

import (
	"errors"
	"net/http"

	"macrofit/internal/anthro"
	"macrofit/internal/models"
	"macrofit/internal/repository"

	"github.com/gin-gonic/gin"

	"gorm.io/gorm"
)

type UserProfileController struct {
	repo repository.UserProfileRepository
}

func NewUserProfileController(repo repository.UserProfileRepository) *UserProfileController {
	return &UserProfileController{repo: repo}
}

func validateProfile(profile *models.UserProfile) error {
	if profile.Gender != nil && !anthro.Gender(*profile.Gender).IsValid() {
		return errors.New("gender must be male or female")
	}
	if profile.Age != nil && (*profile.Age < 0 || *profile.Age > 130) {
		return errors.New("age out of plausible range")
	}
	if profile.HeightCm != nil && *profile.HeightCm <= 0 {
		return errors.New("height must be positive")
	}
	if profile.WeightKg != nil && *profile.WeightKg <= 0 {
		return errors.New("weight must be positive")
	}
	if profile.ManualBodyFatPct != nil && (*profile.ManualBodyFatPct <= 0 || *profile.ManualBodyFatPct >= 100) {
		return errors.New("manual body fat percentage must be between 0 and 100")
	}
	return nil
}

// GetUserProfile godoc
// @Summary Get user profile
// @Description Retrieve the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /profile [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	// Get user ID from the JWT token (set by middleware)
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	profile, err := pc.repo.FindByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User profile retrieved successfully",
		"data":    profile,
	})
}

// SaveUserProfile godoc
// @Summary Create or replace user profile
// @Description Save the authenticated user's anthropometric profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.UserProfile true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to save profile"
// @Router /profile [put]
func (pc *UserProfileController) SaveUserProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	profile.UserID = userID.(uint)

	if err := validateProfile(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid profile data",
			"error":   err.Error(),
		})
		return
	}

	existing, err := pc.repo.FindByUserID(profile.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to save profile",
				"error":   err.Error(),
			})
			return
		}
		if err := pc.repo.Create(&profile); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to save profile",
				"error":   err.Error(),
			})
			return
		}
	} else {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if err := pc.repo.Update(&profile); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to save profile",
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    profile,
	})
}
