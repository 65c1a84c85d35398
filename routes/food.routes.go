package routes

import (
	"macrofit/internal/controllers"
	"macrofit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodRoutes(router *gin.Engine, foodController *controllers.FoodController) {
	foodRoutes := router.Group("/food")
	foodRoutes.Use(middleware.AuthMiddleware())
	{
		foodRoutes.POST("/", foodController.CreateFood)
		foodRoutes.GET("/", foodController.GetFoods)
		foodRoutes.GET("/:id", foodController.GetFoodByID)
		foodRoutes.GET("/:id/measurements", foodController.GetFoodMeasurements)
		foodRoutes.PUT("/:id", foodController.UpdateFood)
		foodRoutes.DELETE("/:id", foodController.DeleteFood)
	}
}
