package routes

import (
	"macrofit/internal/controllers"
	"macrofit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterGoalRoutes(router *gin.Engine, goalController *controllers.GoalController) {
	goalRoutes := router.Group("/goal")
	goalRoutes.Use(middleware.AuthMiddleware())
	{
		goalRoutes.GET("/", goalController.GetGoals)
		goalRoutes.PUT("/", goalController.UpsertGoals)
		goalRoutes.DELETE("/", goalController.DeleteGoals)
	}
}
