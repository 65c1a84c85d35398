package mocks

import (
	"time"

	"macrofit/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockFoodRepository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Create(food *models.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *MockFoodRepository) FindByID(id uint) (*models.Food, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) FindAll(limit int) ([]models.Food, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByCategory(category string) ([]models.Food, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockFoodRepository) SearchByName(query string, limit int) ([]models.Food, error) {
	args := m.Called(query, limit)
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockFoodRepository) Update(food *models.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *MockFoodRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockFoodLogRepository
type MockFoodLogRepository struct {
	mock.Mock
}

func (m *MockFoodLogRepository) Create(log *models.FoodLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockFoodLogRepository) FindByID(id uint) (*models.FoodLog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodLog), args.Error(1)
}

func (m *MockFoodLogRepository) Update(log *models.FoodLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockFoodLogRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFoodLogRepository) FindByUserIDAndDate(userID uint, date time.Time) ([]models.FoodLog, error) {
	args := m.Called(userID, date)
	return args.Get(0).([]models.FoodLog), args.Error(1)
}

func (m *MockFoodLogRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.FoodLog, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.FoodLog), args.Error(1)
}

// Shared MockDailyGoalRepository
type MockDailyGoalRepository struct {
	mock.Mock
}

func (m *MockDailyGoalRepository) FindByUserID(userID uint) (*models.DailyGoal, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyGoal), args.Error(1)
}

func (m *MockDailyGoalRepository) Upsert(goal *models.DailyGoal) error {
	args := m.Called(goal)
	return args.Error(0)
}

func (m *MockDailyGoalRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Create(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Update(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

// Shared MockBodyMeasurementRepository
type MockBodyMeasurementRepository struct {
	mock.Mock
}

func (m *MockBodyMeasurementRepository) Create(measurement *models.BodyMeasurement) error {
	args := m.Called(measurement)
	return args.Error(0)
}

func (m *MockBodyMeasurementRepository) FindByID(id uint) (*models.BodyMeasurement, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Error(1)
}

func (m *MockBodyMeasurementRepository) FindAllByUserID(userID uint, limit int) ([]models.BodyMeasurement, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.BodyMeasurement), args.Error(1)
}

func (m *MockBodyMeasurementRepository) FindLatestByUserID(userID uint) (*models.BodyMeasurement, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Error(1)
}

func (m *MockBodyMeasurementRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockSummaryRefresher is a mock implementation of services.SummaryRefresher
type MockSummaryRefresher struct {
	mock.Mock
}

func (m *MockSummaryRefresher) Enqueue(req models.SummaryRefreshRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

// MockSummaryInvalidator is a mock implementation of controllers.SummaryCacheInvalidator
type MockSummaryInvalidator struct {
	mock.Mock
}

func (m *MockSummaryInvalidator) InvalidateUserSummaries(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}
