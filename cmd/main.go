package main

import (
	"log"
	"macrofit/database"
	"macrofit/docs"
	"macrofit/internal/cache"
	"macrofit/internal/controllers"
	"macrofit/internal/repository"
	"macrofit/internal/services"
	"macrofit/routes"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	err := godotenv.Load("../.env")
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "MacroFit API"
	docs.SwaggerInfo.Description = "This is the api of the MacroFit nutrition tracker with async day summaries via RabbitMQ."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize Redis cache (summaries fall back to recompute when unavailable)
	redisCache, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis connection failed: %v", err)
		log.Println("The application will start, but day summaries will be recomputed on every request")
	} else {
		log.Println("Redis connection established successfully")
		defer redisCache.Close()
	}

	// Initialize repositories
	foodRepo := repository.NewFoodRepository(database.DB)
	foodLogRepo := repository.NewFoodLogRepository(database.DB)
	goalRepo := repository.NewDailyGoalRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	measurementRepo := repository.NewBodyMeasurementRepository(database.DB)

	// Initialize Summary Worker
	workerCount := runtime.NumCPU()
	if workerCount < 3 {
		workerCount = 3
	}

	summaryService := services.NewSummaryService(foodLogRepo, goalRepo)
	summaryWorker := services.NewSummaryWorker(summaryService, redisCache, workerCount)

	log.Printf("Starting summary worker with %d workers...", workerCount)
	summaryWorker.Start()
	defer summaryWorker.Stop()

	// Initialize controllers
	foodController := controllers.NewFoodController(foodRepo)
	foodLogController := controllers.NewFoodLogController(foodLogRepo, foodRepo, summaryWorker)
	summaryController := controllers.NewSummaryController(summaryService, redisCache)
	// A nil *RedisClient must stay a nil interface so the goal
	// controller's guard works.
	var summaryInvalidator controllers.SummaryCacheInvalidator
	if redisCache != nil {
		summaryInvalidator = redisCache
	}
	goalController := controllers.NewGoalController(goalRepo, summaryInvalidator)
	profileController := controllers.NewUserProfileController(profileRepo)
	anthropometryController := controllers.NewAnthropometryController(profileRepo, measurementRepo)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "MacroFit API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
			"summary":  "Async day summary refresh via RabbitMQ",
		})
	})

	routes.RegisterFoodRoutes(router, foodController)
	routes.RegisterFoodLogRoutes(router, foodLogController)
	routes.RegisterSummaryRoutes(router, summaryController)
	routes.RegisterGoalRoutes(router, goalController)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterAnthropometryRoutes(router, anthropometryController)
	routes.RegisterSwaggerRoutes(router)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"goroutines":     runtime.NumGoroutine(),
			"memory_mb":      m.Alloc / 1024 / 1024,
			"workers":        workerCount,
			"summary_worker": summaryWorker != nil,
		})
	})

	router.GET("/debug/cache", func(c *gin.Context) {
		if redisCache == nil {
			c.JSON(200, gin.H{
				"cache_health": false,
				"mode":         "disabled",
			})
			return
		}

		status, err := redisCache.GetStatus()
		if err != nil {
			c.JSON(500, gin.H{
				"cache_health": false,
				"error":        err.Error(),
			})
			return
		}
		c.JSON(200, gin.H{
			"cache_health": true,
			"pool":         status,
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
	log.Printf("Database Health: http://localhost:%s/debug/database", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	runtime.GOMAXPROCS(runtime.NumCPU())

	log.Printf("MacroFit API Server started successfully on port %s", port)
	log.Printf("Using %d workers for summary refresh", workerCount)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
