package routes

import (
	"cardioguard/internal/controllers"
	"cardioguard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/users")
	userRoutes.POST("", userController.Register)
	userRoutes.POST("/login", userController.Login)
	userRoutes.POST("/logout", userController.Logout)

	privateRoutes := userRoutes.Group("/me")
	privateRoutes.Use(middleware.AuthMiddleware())
	{
		privateRoutes.GET("", userController.GetCurrentUser)
		privateRoutes.PATCH("", userController.UpdateProfile)
		privateRoutes.DELETE("", userController.DeleteAccount)
	}
}
