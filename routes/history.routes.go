package routes

import (
	"cardioguard/internal/controllers"
	"cardioguard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterHistoryRoutes(router *gin.Engine, historyController *controllers.HistoryController) {
	historyRoutes := router.Group("/history")
	historyRoutes.Use(middleware.AuthMiddleware())
	{
		historyRoutes.GET("", historyController.GetHistory)
		historyRoutes.DELETE("", historyController.DeleteAllHistory)
		historyRoutes.GET("/:id", historyController.GetHistoryByID)
		historyRoutes.DELETE("/:id", historyController.DeleteHistory)
	}
}
