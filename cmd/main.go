package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"cardioguard/database"
	"cardioguard/internal/cache"
	"cardioguard/internal/controllers"
	"cardioguard/internal/middleware"
	"cardioguard/internal/ml"
	"cardioguard/internal/repository"
	"cardioguard/internal/session"
	"cardioguard/routes"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Redis is optional; content endpoints just skip caching without it.
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, content caching disabled: %v", err)
		redisClient = nil
	}

	userRepo := repository.NewUserRepository(database.DB)
	predictionRepo := repository.NewPredictionRepository(database.DB)

	var faqRepo repository.FAQRepository
	var healthRepo repository.HealthInformationRepository
	if redisClient != nil {
		faqRepo = repository.NewCachedFAQRepository(database.DB, redisClient)
		healthRepo = repository.NewCachedHealthInformationRepository(database.DB, redisClient)
	} else {
		faqRepo = repository.NewFAQRepository(database.DB)
		healthRepo = repository.NewHealthInformationRepository(database.DB)
	}

	predictionEndpoint := os.Getenv("PREDICTION_API_URL")
	if predictionEndpoint == "" {
		predictionEndpoint = "http://localhost:5000/predict"
	}

	log.Printf("Connecting to prediction service at %s...", predictionEndpoint)
	mlClient, err := ml.NewHTTPClient(predictionEndpoint)
	if err != nil {
		log.Fatal("Failed to create prediction client:", err)
	}
	defer mlClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mlClient.HealthCheck(ctx); err != nil {
		log.Printf("Warning: prediction service health check failed: %v", err)
		log.Println("The application will start, but predictions will fail until the service is available")
	} else {
		log.Println("Prediction service connection established successfully")
	}

	userController := controllers.NewUserController(userRepo)
	predictionController := controllers.NewPredictionController(predictionRepo, mlClient)
	historyController := controllers.NewHistoryController(predictionRepo)
	contentController := controllers.NewContentController(faqRepo, healthRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Println("Warning: SESSION_SECRET not set, using an insecure default")
		sessionSecret = "cardioguard-dev-secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   session.MaxAge,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("cardioguard_session", store))
	router.Use(middleware.RequestID())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "CardioGuard API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterPredictionRoutes(router, predictionController)
	routes.RegisterHistoryRoutes(router, historyController)
	routes.RegisterContentRoutes(router, contentController)

	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("Prediction service health: http://localhost:%s/prediction/health", port)
	log.Printf("Database health: http://localhost:%s/debug/database", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
