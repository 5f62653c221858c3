package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chinmayjoshi03/CivicConnect/controllers"
)

func UserRoutes(r *gin.Engine, auth *controllers.AuthController, requireAuth gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.GET("/me", requireAuth, auth.GetMe)
	}
}
