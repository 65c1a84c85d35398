package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"macrofit/internal/controllers"
	"macrofit/internal/models"
	"macrofit/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func addAuthMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func fptr(v float64) *float64 { return &v }

func setupFoodLogController() (*controllers.FoodLogController, *mocks.MockFoodLogRepository, *mocks.MockFoodRepository, *mocks.MockSummaryRefresher) {
	mockLogRepo := new(mocks.MockFoodLogRepository)
	mockFoodRepo := new(mocks.MockFoodRepository)
	mockRefresher := new(mocks.MockSummaryRefresher)
	controller := controllers.NewFoodLogController(mockLogRepo, mockFoodRepo, mockRefresher)
	return controller, mockLogRepo, mockFoodRepo, mockRefresher
}

func chickenBreast() *models.Food {
	return &models.Food{
		ID:           1,
		Name:         "Chicken breast",
		Category:     "protein",
		KcalPerUnit:  110,
		ProteinUnits: 1,
		FatUnits:     0.2,
		GramsPerItem: fptr(30),
		ItemsPerUnit: fptr(1),
	}
}

func TestNewFoodLogController(t *testing.T) {
	controller, _, _, _ := setupFoodLogController()
	assert.NotNil(t, controller)
}

func TestCreateFoodLog(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockFoodLogRepository, *mocks.MockFoodRepository, *mocks.MockSummaryRefresher)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "successful creation",
			userID: 1,
			requestBody: map[string]interface{}{
				"food_id":            1,
				"meal_type":          "breakfast",
				"log_date":           "2024-03-01",
				"quantity":           150,
				"measurement_method": "grams",
			},
			setupMock: func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {
				f.On("FindByID", uint(1)).Return(chickenBreast(), nil)
				l.On("Create", mock.AnythingOfType("*models.FoodLog")).Return(nil)
				r.On("Enqueue", mock.AnythingOfType("models.SummaryRefreshRequest")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Item logged successfully",
		},
		{
			name:   "invalid meal type",
			userID: 1,
			requestBody: map[string]interface{}{
				"food_id":            1,
				"meal_type":          "brunch",
				"log_date":           "2024-03-01",
				"quantity":           150,
				"measurement_method": "grams",
			},
			setupMock:      func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid meal type",
		},
		{
			name:   "invalid measurement method",
			userID: 1,
			requestBody: map[string]interface{}{
				"food_id":            1,
				"meal_type":          "lunch",
				"log_date":           "2024-03-01",
				"quantity":           150,
				"measurement_method": "ounces",
			},
			setupMock:      func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid measurement method",
		},
		{
			name:   "invalid log date",
			userID: 1,
			requestBody: map[string]interface{}{
				"food_id":            1,
				"meal_type":          "lunch",
				"log_date":           "03/01/2024",
				"quantity":           150,
				"measurement_method": "grams",
			},
			setupMock:      func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid log date",
		},
		{
			name:           "invalid JSON",
			userID:         1,
			requestBody:    nil,
			setupMock:      func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:   "food not found",
			userID: 1,
			requestBody: map[string]interface{}{
				"food_id":            999,
				"meal_type":          "dinner",
				"log_date":           "2024-03-01",
				"quantity":           150,
				"measurement_method": "grams",
			},
			setupMock: func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {
				f.On("FindByID", uint(999)).Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Food not found",
		},
		{
			name:   "negative quantity rejected by converter",
			userID: 1,
			requestBody: map[string]interface{}{
				"food_id":            1,
				"meal_type":          "snack",
				"log_date":           "2024-03-01",
				"quantity":           -5,
				"measurement_method": "grams",
			},
			setupMock: func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {
				f.On("FindByID", uint(1)).Return(chickenBreast(), nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Failed to convert quantity",
		},
		{
			name:   "measurement method not encoded for this food",
			userID: 1,
			requestBody: map[string]interface{}{
				"food_id":            1,
				"meal_type":          "lunch",
				"log_date":           "2024-03-01",
				"quantity":           2,
				"measurement_method": "cups",
			},
			setupMock: func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {
				f.On("FindByID", uint(1)).Return(chickenBreast(), nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Failed to convert quantity",
		},
		{
			name:   "repository error",
			userID: 1,
			requestBody: map[string]interface{}{
				"food_id":            1,
				"meal_type":          "breakfast",
				"log_date":           "2024-03-01",
				"quantity":           150,
				"measurement_method": "grams",
			},
			setupMock: func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {
				f.On("FindByID", uint(1)).Return(chickenBreast(), nil)
				l.On("Create", mock.AnythingOfType("*models.FoodLog")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to log item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockLogRepo, mockFoodRepo, mockRefresher := setupFoodLogController()
			tt.setupMock(mockLogRepo, mockFoodRepo, mockRefresher)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.POST("/log", controller.CreateFoodLog)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("invalid json")
			}

			req := httptest.NewRequest("POST", "/log", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockLogRepo.AssertExpectations(t)
			mockFoodRepo.AssertExpectations(t)
		})
	}
}

func TestCreateFoodLogSnapshot(t *testing.T) {
	controller, mockLogRepo, mockFoodRepo, mockRefresher := setupFoodLogController()

	mockFoodRepo.On("FindByID", uint(1)).Return(chickenBreast(), nil)
	mockLogRepo.On("Create", mock.AnythingOfType("*models.FoodLog")).Return(nil)
	mockRefresher.On("Enqueue", mock.AnythingOfType("models.SummaryRefreshRequest")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/log", controller.CreateFoodLog)

	body, _ := json.Marshal(map[string]interface{}{
		"food_id":            1,
		"meal_type":          "breakfast",
		"log_date":           "2024-03-01",
		"quantity":           150,
		"measurement_method": "grams",
	})

	req := httptest.NewRequest("POST", "/log", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	// 150 g at 30 g per portion is 5 servings; every snapshot field
	// scales with it.
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 5.0, data["servings"])
	assert.Equal(t, 550.0, data["kcal"])
	assert.Equal(t, 5.0, data["protein_units"])
	assert.Equal(t, 1.0, data["fat_units"])

	mockRefresher.AssertExpectations(t)
}

func TestCreateFoodLogUnauthorized(t *testing.T) {
	controller, _, _, _ := setupFoodLogController()
	router := setupTestRouter()
	router.POST("/log", controller.CreateFoodLog)

	body, _ := json.Marshal(map[string]interface{}{
		"food_id":            1,
		"meal_type":          "breakfast",
		"log_date":           "2024-03-01",
		"quantity":           150,
		"measurement_method": "grams",
	})

	req := httptest.NewRequest("POST", "/log", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "User not authenticated", response["message"])
}

func TestUpdateFoodLog(t *testing.T) {
	logDate, _ := time.Parse("2006-01-02", "2024-03-01")

	existingLog := func() *models.FoodLog {
		return &models.FoodLog{
			ID:                1,
			UserID:            1,
			FoodID:            1,
			MealType:          "breakfast",
			LogDate:           logDate,
			Quantity:          150,
			MeasurementMethod: "grams",
			Servings:          5,
			Kcal:              550,
		}
	}

	tests := []struct {
		name           string
		logID          string
		userID         uint
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockFoodLogRepository, *mocks.MockFoodRepository, *mocks.MockSummaryRefresher)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "successful update",
			logID:  "1",
			userID: 1,
			requestBody: map[string]interface{}{
				"quantity": 90,
			},
			setupMock: func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {
				l.On("FindByID", uint(1)).Return(existingLog(), nil)
				f.On("FindByID", uint(1)).Return(chickenBreast(), nil)
				l.On("Update", mock.AnythingOfType("*models.FoodLog")).Return(nil)
				r.On("Enqueue", mock.AnythingOfType("models.SummaryRefreshRequest")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Item updated successfully",
		},
		{
			name:   "method change re-resolved",
			logID:  "1",
			userID: 1,
			requestBody: map[string]interface{}{
				"quantity":           2,
				"measurement_method": "items",
			},
			setupMock: func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {
				l.On("FindByID", uint(1)).Return(existingLog(), nil)
				f.On("FindByID", uint(1)).Return(chickenBreast(), nil)
				l.On("Update", mock.AnythingOfType("*models.FoodLog")).Return(nil)
				r.On("Enqueue", mock.AnythingOfType("models.SummaryRefreshRequest")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Item updated successfully",
		},
		{
			name:           "invalid log ID",
			logID:          "invalid",
			userID:         1,
			requestBody:    map[string]interface{}{"quantity": 90},
			setupMock:      func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid log ID",
		},
		{
			name:        "log not found",
			logID:       "999",
			userID:      1,
			requestBody: map[string]interface{}{"quantity": 90},
			setupMock: func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {
				l.On("FindByID", uint(999)).Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Log not found",
		},
		{
			name:        "forbidden update",
			logID:       "1",
			userID:      2,
			requestBody: map[string]interface{}{"quantity": 90},
			setupMock: func(l *mocks.MockFoodLogRepository, f *mocks.MockFoodRepository, r *mocks.MockSummaryRefresher) {
				l.On("FindByID", uint(1)).Return(existingLog(), nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Log belongs to another user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockLogRepo, mockFoodRepo, mockRefresher := setupFoodLogController()
			tt.setupMock(mockLogRepo, mockFoodRepo, mockRefresher)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.PUT("/log/:id", controller.UpdateFoodLog)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PUT", "/log/"+tt.logID, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockLogRepo.AssertExpectations(t)
			mockFoodRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteFoodLog(t *testing.T) {
	logDate, _ := time.Parse("2006-01-02", "2024-03-01")

	tests := []struct {
		name           string
		logID          string
		userID         uint
		setupMock      func(*mocks.MockFoodLogRepository, *mocks.MockSummaryRefresher)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "successful deletion",
			logID:  "1",
			userID: 1,
			setupMock: func(l *mocks.MockFoodLogRepository, r *mocks.MockSummaryRefresher) {
				entry := &models.FoodLog{ID: 1, UserID: 1, LogDate: logDate}
				l.On("FindByID", uint(1)).Return(entry, nil)
				l.On("Delete", uint(1)).Return(nil)
				r.On("Enqueue", mock.AnythingOfType("models.SummaryRefreshRequest")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Item deleted successfully",
		},
		{
			name:           "invalid log ID",
			logID:          "invalid",
			userID:         1,
			setupMock:      func(l *mocks.MockFoodLogRepository, r *mocks.MockSummaryRefresher) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid log ID",
		},
		{
			name:   "log not found",
			logID:  "999",
			userID: 1,
			setupMock: func(l *mocks.MockFoodLogRepository, r *mocks.MockSummaryRefresher) {
				l.On("FindByID", uint(999)).Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Log not found",
		},
		{
			name:   "forbidden deletion",
			logID:  "1",
			userID: 2,
			setupMock: func(l *mocks.MockFoodLogRepository, r *mocks.MockSummaryRefresher) {
				entry := &models.FoodLog{ID: 1, UserID: 1, LogDate: logDate}
				l.On("FindByID", uint(1)).Return(entry, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Log belongs to another user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockLogRepo, _, mockRefresher := setupFoodLogController()
			tt.setupMock(mockLogRepo, mockRefresher)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.DELETE("/log/:id", controller.DeleteFoodLog)

			req := httptest.NewRequest("DELETE", "/log/"+tt.logID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockLogRepo.AssertExpectations(t)
		})
	}
}

func TestGetFoodLogsByDate(t *testing.T) {
	logDate, _ := time.Parse("2006-01-02", "2024-03-01")

	tests := []struct {
		name           string
		userID         uint
		date           string
		setupMock      func(*mocks.MockFoodLogRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "successful retrieval",
			userID: 1,
			date:   "2024-03-01",
			setupMock: func(l *mocks.MockFoodLogRepository) {
				logs := []models.FoodLog{
					{ID: 1, UserID: 1, MealType: "breakfast", LogDate: logDate, Kcal: 330},
					{ID: 2, UserID: 1, MealType: "lunch", LogDate: logDate, Kcal: 450},
				}
				l.On("FindByUserIDAndDate", uint(1), logDate).Return(logs, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Items retrieved successfully",
		},
		{
			name:           "invalid date",
			userID:         1,
			date:           "not-a-date",
			setupMock:      func(l *mocks.MockFoodLogRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid date",
		},
		{
			name:   "repository error",
			userID: 1,
			date:   "2024-03-01",
			setupMock: func(l *mocks.MockFoodLogRepository) {
				l.On("FindByUserIDAndDate", uint(1), logDate).Return([]models.FoodLog{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to retrieve items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockLogRepo, _, _ := setupFoodLogController()
			tt.setupMock(mockLogRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.GET("/log", controller.GetFoodLogsByDate)

			req := httptest.NewRequest("GET", "/log?date="+tt.date, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockLogRepo.AssertExpectations(t)
		})
	}
}
