package utils

import (
	"fmt"
	"log"
	mathrand "math/rand"
	"os"
	"time"

	"macrofit/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const DefaultNumUsers = 1000

func floatPtr(v float64) *float64 { return &v }

// catalogFoods is the starter food catalog. Each entry carries the
// measurement encodings its category supports, so seeded data exercises
// every resolver path (grams, cups, tablespoons, items and direct units).
func catalogFoods() []models.Food {
	return []models.Food{
		{
			Name: "Chicken breast", Category: "protein",
			KcalPerUnit: 110, ProteinUnits: 1, FatUnits: 0.2,
			GramsPerItem: floatPtr(30), ItemsPerUnit: floatPtr(1),
		},
		{
			Name: "Salmon fillet", Category: "protein",
			KcalPerUnit: 175, ProteinUnits: 1, FatUnits: 1,
			GramsPerItem: floatPtr(30),
		},
		{
			Name: "Whole egg", Category: "protein",
			KcalPerUnit: 75, ProteinUnits: 1, FatUnits: 0.6,
			GramsPerItem: floatPtr(50), ItemsPerUnit: floatPtr(1),
		},
		{
			Name: "Cooked white rice", Category: "carb",
			KcalPerUnit: 68, CarbUnits: 1,
			GramsPerItem: floatPtr(45), GramsPerCup: floatPtr(140),
		},
		{
			Name: "Rolled oats", Category: "carb",
			KcalPerUnit: 76, CarbUnits: 1,
			GramsPerItem: floatPtr(20), GramsPerCup: floatPtr(80), GramsPerTbsp: floatPtr(5),
		},
		{
			Name: "Whole wheat bread", Category: "carb",
			KcalPerUnit: 80, CarbUnits: 1,
			GramsPerItem: floatPtr(30), ItemsPerUnit: floatPtr(1),
		},
		{
			Name: "Olive oil", Category: "fat",
			KcalPerUnit: 45, FatUnits: 1,
			GramsPerItem: floatPtr(5), GramsPerTbsp: floatPtr(14),
		},
		{
			Name: "Peanut butter", Category: "spread",
			KcalPerUnit: 95, FatUnits: 1.5, ProteinUnits: 0.3,
			GramsPerItem: floatPtr(16), GramsPerTbsp: floatPtr(16),
		},
		{
			Name: "Steamed broccoli", Category: "vegetable",
			KcalPerUnit: 27, VegUnits: 1,
			GramsPerItem: floatPtr(78), GramsPerCup: floatPtr(156),
		},
		{
			Name: "Mixed salad greens", Category: "vegetable",
			KcalPerUnit: 9, VegUnits: 1,
			GramsPerCup: floatPtr(36),
		},
		{
			Name: "Medium apple", Category: "fruit",
			KcalPerUnit: 95, FruitUnits: 1, CarbUnits: 0.8,
			GramsPerItem: floatPtr(180), ItemsPerUnit: floatPtr(1),
		},
		{
			Name: "Banana", Category: "fruit",
			KcalPerUnit: 105, FruitUnits: 1, CarbUnits: 1,
			GramsPerItem: floatPtr(120), ItemsPerUnit: floatPtr(1),
		},
		// Direct-unit foods: logged as label servings, no gram encoding.
		{
			Name: "Restaurant pad thai", Category: "restaurant",
			KcalPerUnit: 650, CarbUnits: 3, ProteinUnits: 1.5, FatUnits: 2,
		},
		{
			Name: "Frozen lasagna", Category: "grocery",
			KcalPerUnit: 380, CarbUnits: 2, ProteinUnits: 1, FatUnits: 1.5,
		},
		{
			Name: "Lager beer", Category: "alcohol",
			KcalPerUnit: 150, CarbUnits: 0.9,
		},
	}
}

// ==================== CATALOG SEEDING ====================

func SeedFoodCatalog() error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}
	return seedFoodCatalogToDatabase(db)
}

func seedFoodCatalogToDatabase(db *gorm.DB) error {
	log.Println("Connected to database successfully")

	foods := catalogFoods()
	created := 0

	for i := range foods {
		var existing models.Food
		result := db.Where("name = ?", foods[i].Name).First(&existing)
		if result.Error == nil {
			continue
		}
		if result.Error != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to check food %q: %v", foods[i].Name, result.Error)
		}

		if err := db.Create(&foods[i]).Error; err != nil {
			return fmt.Errorf("failed to create food %q: %v", foods[i].Name, err)
		}
		created++
	}

	log.Printf("✅ Food catalog seeded: %d created, %d already present", created, len(foods)-created)
	return nil
}

func GetFoodCount() (int64, error) {
	db, err := connectToDatabase()
	if err != nil {
		return 0, err
	}

	var count int64
	result := db.Model(&models.Food{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count foods: %v", result.Error)
	}

	return count, nil
}

// ==================== TEST USER SEEDING ====================

func SeedUsers(numUsers int) error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}
	return seedUsersToDatabase(db, numUsers)
}

func seedUsersToDatabase(db *gorm.DB, numUsers int) error {
	log.Printf("Starting to seed %d users with profiles...", numUsers)

	startTime := time.Now()
	r := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))

	var maxID uint
	row := db.Model(&models.User{}).Select("COALESCE(MAX(id), 0)").Row()
	if err := row.Scan(&maxID); err != nil {
		return fmt.Errorf("failed to get max user ID: %v", err)
	}

	baseIndex := int(maxID) + 1

	batchSize := 1000
	for i := 0; i < numUsers; i += batchSize {
		var users []models.User

		end := i + batchSize
		if end > numUsers {
			end = numUsers
		}

		for j := i; j < end; j++ {
			users = append(users, generateUser(baseIndex+j))
		}

		result := db.CreateInBatches(&users, 100)
		if result.Error != nil {
			return fmt.Errorf("failed to create users batch %d-%d: %v", i, end-1, result.Error)
		}

		// Profiles make the anthropometry endpoints usable out of the box.
		var profiles []models.UserProfile
		for _, user := range users {
			profiles = append(profiles, generateProfile(user.ID, r))
		}

		result = db.CreateInBatches(&profiles, 100)
		if result.Error != nil {
			return fmt.Errorf("failed to create profiles batch %d-%d: %v", i, end-1, result.Error)
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("✅ Successfully created %d users with profiles in %s (%.2f users/sec)",
		numUsers, elapsed, float64(numUsers)/elapsed.Seconds())

	return nil
}

func CleanupTestUsers() error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	result := db.Where("email LIKE ?", "testuser%@example.com").Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup test users: %v", result.Error)
	}

	log.Printf("✅ Deleted %d test users", result.RowsAffected)
	return nil
}

func GetUserCount() (int64, error) {
	db, err := connectToDatabase()
	if err != nil {
		return 0, err
	}

	var count int64
	result := db.Model(&models.User{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count users: %v", result.Error)
	}

	return count, nil
}

// ==================== CORE DATABASE FUNCTIONS ====================

func connectToDatabase() (*gorm.DB, error) {
	dbHost := getEnv("DB_HOST", "macrofit-db")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "macrofit")
	dbSSLMode := getEnv("DB_SSLMODE", "disable")
	dbTimeZone := getEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbHost, dbUser, dbPassword, dbName, dbPort, dbSSLMode, dbTimeZone)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// ==================== HELPER FUNCTIONS ====================

func generateUser(index int) models.User {
	return models.User{
		Name:  fmt.Sprintf("Test User %d", index),
		Email: fmt.Sprintf("testuser%d@example.com", index),
	}
}

func generateProfile(userID uint, r *mathrand.Rand) models.UserProfile {
	gender := randomGender(r)
	age := r.Intn(53) + 18           // 18-70
	height := 150.0 + r.Float64()*45 // 150-195 cm
	weight := 48.0 + r.Float64()*60  // 48-108 kg

	return models.UserProfile{
		UserID:   userID,
		Gender:   &gender,
		Age:      &age,
		HeightCm: &height,
		WeightKg: &weight,
	}
}

func randomGender(r *mathrand.Rand) string {
	if r.Intn(2) == 0 {
		return "male"
	}
	return "female"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
