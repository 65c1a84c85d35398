package routes

import (
	"macrofit/internal/controllers"
	"macrofit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSummaryRoutes(router *gin.Engine, summaryController *controllers.SummaryController) {
	summaryRoutes := router.Group("/summary")
	summaryRoutes.Use(middleware.AuthMiddleware())
	{
		summaryRoutes.GET("/day", summaryController.GetDaySummary)
		summaryRoutes.GET("/range", summaryController.GetRangeSummary)
	}
}
