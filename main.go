package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chinmayjoshi03/CivicConnect/config"
	"github.com/chinmayjoshi03/CivicConnect/controllers"
	"github.com/chinmayjoshi03/CivicConnect/geocode"
	"github.com/chinmayjoshi03/CivicConnect/inference"
	"github.com/chinmayjoshi03/CivicConnect/logger"
	"github.com/chinmayjoshi03/CivicConnect/middlewares"
	"github.com/chinmayjoshi03/CivicConnect/repositories"
	"github.com/chinmayjoshi03/CivicConnect/routes"
	"github.com/chinmayjoshi03/CivicConnect/services"
	"github.com/chinmayjoshi03/CivicConnect/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	appLog := logger.NewLogger("civicconnect")

	if cfg.JWTSecret == "" {
		appLog.Fatal("JWT_SECRET is required")
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	appLog.Info("MongoDB connection established")

	redisClient, err := config.ConnectRedis(cfg)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to connect to Redis")
	}
	appLog.Info("Redis connection established")

	store, err := storage.NewAzureStore(context.Background(), cfg.AzureStorageConnection, cfg.AzureContainer)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize blob storage")
	}

	userRepo := repositories.NewUserRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	departmentRepo := repositories.NewDepartmentRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, appLog)
	reportService := services.NewReportService(reportRepo, userRepo, departmentRepo, appLog)
	classifyService := services.NewClassificationService(inference.NewEngine(cfg.InferenceURL, cfg.InferenceKey), appLog)

	authController := controllers.NewAuthController(authService)
	reportController := controllers.NewReportController(reportService)
	classifyController := controllers.NewClassifyController(classifyService)
	uploadController := controllers.NewUploadController(store)
	geocodeController := controllers.NewGeocodeController(geocode.NewClient(cfg.GeocodeURL))

	registry := prometheus.NewRegistry()
	httpMetrics := middlewares.NewMetrics(registry)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(appLog))
	r.Use(httpMetrics.Handler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	requireAuth := middlewares.AuthMiddleware(cfg.JWTSecret)
	submitLimit := middlewares.ReportRateLimiter(redisClient, cfg.ReportDailyLimit)

	routes.AuthRoutes(r, authController)
	routes.UserRoutes(r, authController, requireAuth)
	routes.ReportRoutes(r, reportController, requireAuth, submitLimit)
	routes.MediaRoutes(r, uploadController, classifyController, requireAuth)
	routes.GeocodeRoutes(r, geocodeController, requireAuth)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	appLog.WithField("port", cfg.Port).Info("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.WithError(err).Fatal("Failed to start server")
	}
}
