package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chinmayjoshi03/CivicConnect/controllers"
)

// MediaRoutes sets up the image upload and classification routes
func MediaRoutes(r *gin.Engine, uploads *controllers.UploadController, classify *controllers.ClassifyController, requireAuth gin.HandlerFunc) {
	api := r.Group("/api")
	{
		api.POST("/uploads", requireAuth, uploads.UploadImage)
		api.POST("/classify", requireAuth, classify.ClassifyImage)
	}
}
