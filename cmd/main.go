package main

import (
	"log"

	"github.com/edasenturkk/term-project-backend/cache"
	"github.com/edasenturkk/term-project-backend/config"
	"github.com/edasenturkk/term-project-backend/db"
	"github.com/edasenturkk/term-project-backend/handlers"
	"github.com/edasenturkk/term-project-backend/middleware"
	"github.com/edasenturkk/term-project-backend/monitoring"
	"github.com/edasenturkk/term-project-backend/services"
	"github.com/edasenturkk/term-project-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	utils.InitLogger(cfg.LogLevel)

	database, err := db.InitDB(cfg.DatabaseURL)
	if err != nil {
		utils.Log.Fatal(err)
	}
	utils.Log.Info("Database connected and migrated")

	if err := cache.InitRedis(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		utils.Log.Warnf("Redis unavailable, running without cache: %v", err)
	}

	monitoring.InitMetrics()

	aggregator := services.NewRatingAggregator(database)
	aggregator.Start()
	defer aggregator.Stop()

	playtimeService := services.NewPlaytimeService(database, aggregator)
	reviewService := services.NewReviewService(database, playtimeService, aggregator)
	gameService := services.NewGameService(database)
	categoryService := services.NewCategoryService(database)
	userService := services.NewUserService(database, aggregator)
	projectionService := services.NewProjectionService(database)
	statsService := services.NewStatsService(database)

	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(userService, projectionService, statsService)
	productHandler := handlers.NewProductHandler(gameService, playtimeService, reviewService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(monitoring.PrometheusMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Public routes
	r.POST("/users", authHandler.Register)
	r.POST("/users/login", authHandler.Login)
	r.GET("/products", productHandler.List)
	r.GET("/products/detailed", productHandler.ListDetailed)
	r.GET("/products/:id", productHandler.Get)
	r.GET("/products/:id/comments", productHandler.GetComments)
	r.GET("/categories", categoryHandler.List)
	r.GET("/metrics", monitoring.PrometheusHandler())

	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(database, cfg.JWTSecret))
	{
		auth.GET("/users/profile", authHandler.GetProfile)
		auth.PUT("/users/profile", authHandler.UpdateProfile)
		auth.GET("/users/stats", userHandler.GetStats)
		auth.GET("/users/most-played", userHandler.GetMostPlayed)
		auth.GET("/users/comments", userHandler.GetComments)
		auth.GET("/users/dashboard", userHandler.GetDashboard)
		auth.GET("/users/page", userHandler.GetPage)
		auth.POST("/products/:id/play", productHandler.RecordPlay)
		auth.POST("/products/:id/reviews", productHandler.CreateReview)
	}

	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(database, cfg.JWTSecret), middleware.AdminOnly())
	{
		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)
		admin.GET("/users", userHandler.List)
		admin.PUT("/users/:id", userHandler.Update)
		admin.DELETE("/users/:id", userHandler.Delete)
		admin.POST("/categories", categoryHandler.Create)
		admin.DELETE("/categories/:id", categoryHandler.Delete)
		admin.GET("/admin/stats", userHandler.GetPlatformStats)
	}

	utils.Log.Info("Starting server on port ", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Log.Fatal("Failed to start server: ", err)
	}
}
