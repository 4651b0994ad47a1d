package routes

import (
	"cardioguard/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterContentRoutes(router *gin.Engine, contentController *controllers.ContentController) {
	router.GET("/faq", contentController.GetFAQs)
	router.GET("/health-information", contentController.GetHealthInformation)
}
