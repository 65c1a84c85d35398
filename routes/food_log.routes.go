package routes

import (
	"macrofit/internal/controllers"
	"macrofit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodLogRoutes(router *gin.Engine, foodLogController *controllers.FoodLogController) {
	logRoutes := router.Group("/log")
	logRoutes.Use(middleware.AuthMiddleware())
	{
		logRoutes.POST("/", foodLogController.CreateFoodLog)
		logRoutes.GET("/", foodLogController.GetFoodLogsByDate)
		logRoutes.PUT("/:id", foodLogController.UpdateFoodLog)
		logRoutes.DELETE("/:id", foodLogController.DeleteFoodLog)
	}
}
