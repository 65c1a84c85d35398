package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"macrofit/internal/anthro"
	"macrofit/internal/models"
	"macrofit/internal/repository"

	"github.com/gin-gonic/gin"
)

type AnthropometryController struct {
	profileRepo     repository.UserProfileRepository
	measurementRepo repository.BodyMeasurementRepository
}

func NewAnthropometryController(
	profileRepo repository.UserProfileRepository,
	measurementRepo repository.BodyMeasurementRepository,
) *AnthropometryController {
	return &AnthropometryController{
		profileRepo:     profileRepo,
		measurementRepo: measurementRepo,
	}
}

func anthroStatus(err error) int {
	var oor *anthro.OutOfRangeError
	if errors.As(err, &oor) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, anthro.ErrIncompleteProfile) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// GetAnthropometryReport godoc
// @Summary Get the user's anthropometric report
// @Description BMI, resting metabolic rate and body-fat estimate; each section is null when its inputs are missing
// @Tags anthropometry
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Report computed successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /anthropometry [get]
func (ac *AnthropometryController) GetAnthropometryReport(c *gin.Context) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}
	userID := raw.(uint)

	profile, err := ac.profileRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	report := gin.H{
		"bmi":      nil,
		"rmr":      nil,
		"body_fat": nil,
	}

	// Each estimate is independently computable; a missing input blanks
	// its own section only.
	if profile.WeightKg != nil && profile.HeightCm != nil {
		if bmi, err := anthro.BMI(*profile.WeightKg, *profile.HeightCm); err == nil {
			report["bmi"] = gin.H{
				"value":          bmi,
				"classification": anthro.ClassifyBMI(bmi),
			}
		}
	}

	if rmr, err := anthro.RMR(profile.AnthroProfile()); err == nil {
		report["rmr"] = gin.H{"kcal_per_day": rmr}
	}

	if bodyFat := ac.resolveBodyFat(profile); bodyFat != nil {
		report["body_fat"] = bodyFat
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Report computed successfully",
		"data":    report,
	})
}

func profileGender(p *models.UserProfile) anthro.Gender {
	if p.Gender == nil {
		return ""
	}
	return anthro.Gender(*p.Gender)
}

func profileAge(p *models.UserProfile) int {
	if p.Age == nil {
		return 0
	}
	return *p.Age
}

// resolveBodyFat picks the body-fat estimate for the report: a manual
// profile entry wins, otherwise the latest stored skinfold session.
func (ac *AnthropometryController) resolveBodyFat(profile *models.UserProfile) gin.H {
	if profile.ManualBodyFatPct != nil {
		estimate, err := anthro.EstimateBodyFat(
			profileGender(profile), profileAge(profile),
			anthro.SkinfoldSet{}, profile.ManualBodyFatPct)
		if err != nil {
			return nil
		}
		result := gin.H{
			"body_fat_percentage": estimate.Percentage,
			"source":              estimate.Source,
		}
		if profile.WeightKg != nil {
			fatMass, leanMass := anthro.Composition(*profile.WeightKg, estimate.Percentage)
			result["fat_mass_kg"] = fatMass
			result["lean_mass_kg"] = leanMass
		}
		return result
	}

	latest, err := ac.measurementRepo.FindLatestByUserID(profile.UserID)
	if err != nil {
		return nil
	}
	result := gin.H{
		"body_fat_percentage": latest.BodyFatPct,
		"source":              latest.FatSource,
		"fat_mass_kg":         latest.FatMassKg,
		"lean_mass_kg":        latest.LeanMassKg,
		"measured_at":         latest.MeasuredAt,
	}
	if latest.BodyDensity != nil {
		result["body_density"] = *latest.BodyDensity
	}
	return result
}

// SubmitSkinfolds godoc
// @Summary Submit a skinfold caliper session
// @Description Compute body density, body-fat percentage and composition, then persist the measurement
// @Tags anthropometry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skinfolds body models.SkinfoldRequest true "Caliper readings in mm"
// @Success 201 {object} map[string]interface{} "Measurement recorded successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 422 {object} map[string]interface{} "Reading out of range"
// @Router /anthropometry/skinfolds [post]
func (ac *AnthropometryController) SubmitSkinfolds(c *gin.Context) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}
	userID := raw.(uint)

	var req models.SkinfoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	profile, err := ac.profileRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Profile required",
			"error":   "Gender and age must be set on the profile before submitting skinfolds",
		})
		return
	}

	if profile.Gender == nil || profile.Age == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Profile incomplete",
			"error":   anthro.ErrIncompleteProfile.Error(),
		})
		return
	}

	weight := req.WeightKg
	if weight == nil {
		weight = profile.WeightKg
	}
	if weight == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Weight required",
			"error":   "Weight must be supplied or set on the profile",
		})
		return
	}

	skinfolds := anthro.SkinfoldSet{
		Biceps:      req.BicepsMm,
		Triceps:     req.TricepsMm,
		Subscapular: req.SubscapularMm,
		Suprailiac:  req.SuprailiacMm,
	}

	// A manual profile entry takes precedence and short-circuits the
	// density chain; the raw readings are still recorded.
	estimate, err := anthro.EstimateBodyFat(
		anthro.Gender(*profile.Gender), *profile.Age, skinfolds, profile.ManualBodyFatPct)
	if err != nil {
		c.JSON(anthroStatus(err), gin.H{
			"status":  "error",
			"message": "Failed to compute body fat percentage",
			"error":   err.Error(),
		})
		return
	}

	fatMass, leanMass := anthro.Composition(*weight, estimate.Percentage)

	measuredAt := time.Now()
	if req.MeasuredAt != "" {
		if parsed, perr := time.Parse(time.RFC3339, req.MeasuredAt); perr == nil {
			measuredAt = parsed
		}
	}

	measurement := models.BodyMeasurement{
		UserID:        userID,
		MeasuredAt:    measuredAt,
		WeightKg:      *weight,
		BicepsMm:      req.BicepsMm,
		TricepsMm:     req.TricepsMm,
		SubscapularMm: req.SubscapularMm,
		SuprailiacMm:  req.SuprailiacMm,
		BodyDensity:   estimate.Density,
		BodyFatPct:    estimate.Percentage,
		FatSource:     string(estimate.Source),
		FatMassKg:     fatMass,
		LeanMassKg:    leanMass,
	}

	if err := ac.measurementRepo.Create(&measurement); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to record measurement",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Measurement recorded successfully",
		"data":    measurement,
	})
}

// GetBodyMeasurements godoc
// @Summary List skinfold measurement history
// @Tags anthropometry
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Measurements retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /anthropometry/measurements [get]
func (ac *AnthropometryController) GetBodyMeasurements(c *gin.Context) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}
	userID := raw.(uint)

	measurements, err := ac.measurementRepo.FindAllByUserID(userID, 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve measurements",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measurements retrieved successfully",
		"data":    measurements,
	})
}

// DeleteBodyMeasurement godoc
// @Summary Delete a skinfold measurement
// @Tags anthropometry
// @Produce json
// @Security BearerAuth
// @Param id path int true "Measurement ID"
// @Success 200 {object} map[string]interface{} "Measurement deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid measurement ID"
// @Failure 404 {object} map[string]interface{} "Measurement not found"
// @Router /anthropometry/measurements/{id} [delete]
func (ac *AnthropometryController) DeleteBodyMeasurement(c *gin.Context) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}
	userID := raw.(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid measurement ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	measurement, err := ac.measurementRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Measurement not found",
			"error":   err.Error(),
		})
		return
	}

	if measurement.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Measurement belongs to another user",
			"error":   "Forbidden",
		})
		return
	}

	if err := ac.measurementRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete measurement",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measurement deleted successfully",
	})
}
