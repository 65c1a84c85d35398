package routes

import (
	"macrofit/internal/controllers"
	"macrofit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAnthropometryRoutes(router *gin.Engine, anthropometryController *controllers.AnthropometryController) {
	anthroRoutes := router.Group("/anthropometry")
	anthroRoutes.Use(middleware.AuthMiddleware())
	{
		anthroRoutes.GET("/", anthropometryController.GetAnthropometryReport)
		anthroRoutes.POST("/skinfolds", anthropometryController.SubmitSkinfolds)
		anthroRoutes.GET("/measurements", anthropometryController.GetBodyMeasurements)
		anthroRoutes.DELETE("/measurements/:id", anthropometryController.DeleteBodyMeasurement)
	}
}
