package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chinmayjoshi03/CivicConnect/controllers"
)

// AuthRoutes sets up the registration and login routes
func AuthRoutes(r *gin.Engine, auth *controllers.AuthController) {
	api := r.Group("/api")
	{
		api.POST("/register", auth.RegisterUser)
		api.POST("/login", auth.LoginUser)
	}
}
