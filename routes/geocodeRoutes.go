package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chinmayjoshi03/CivicConnect/controllers"
)

// GeocodeRoutes sets up the address lookup routes
func GeocodeRoutes(r *gin.Engine, geo *controllers.GeocodeController, requireAuth gin.HandlerFunc) {
	geocode := r.Group("/api/geocode")
	{
		geocode.GET("", requireAuth, geo.ResolveAddress)
		geocode.GET("/reverse", requireAuth, geo.ResolveCoordinates)
	}
}
