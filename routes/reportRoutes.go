package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chinmayjoshi03/CivicConnect/controllers"
)

// ReportRoutes sets up the report routes
func ReportRoutes(r *gin.Engine, reports *controllers.ReportController, requireAuth, submitLimit gin.HandlerFunc) {
	report := r.Group("/api/reports")
	{
		report.POST("", requireAuth, submitLimit, reports.CreateReport)
		report.GET("", requireAuth, reports.GetReports)
		report.GET("/:id", requireAuth, reports.GetReport)
		report.PATCH("/:id/status", requireAuth, reports.UpdateReportStatus)
		report.POST("/:id/comments", requireAuth, reports.AddReportComment)
	}

	r.GET("/api/categories", reports.GetCategories)
}
