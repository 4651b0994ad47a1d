package routes

import (
	"cardioguard/internal/controllers"
	"cardioguard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPredictionRoutes(router *gin.Engine, predictionController *controllers.PredictionController) {
	predictionRoutes := router.Group("/prediction")
	predictionRoutes.GET("/health", predictionController.TestMLConnection)

	// Guests may run a prediction; only logged-in users get a saved record.
	predictionRoutes.POST("", middleware.OptionalAuth(), predictionController.MakePrediction)

	predictionRoutes.GET("/last-test", middleware.AuthMiddleware(), predictionController.GetLastTest)
}
