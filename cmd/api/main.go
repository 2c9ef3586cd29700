package main

import (
	"fmt"
	"net/http"
	"os"

	"serenai/internal/config"
	"serenai/internal/database"
	"serenai/internal/handlers"
	"serenai/internal/logger"
	"serenai/internal/middleware"
	"serenai/internal/services"
	"serenai/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "serenai/internal/docs" // Import swagger docs
)

// @title           SerenAI API
// @version         1.0
// @description     SerenAI is a conversational "virtual mother" companion. It handles signup/login, profile and persona storage, voice sample uploads, and a rule-based chat responder.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	profileService := services.NewProfileService(db)
	personaService := services.NewPersonaService(db)
	voiceService := services.NewVoiceService(db, personaService, appConfig.VoiceDir, appConfig.MaxVoiceFileBytes)
	eventService := services.NewEventService(db)
	chatService := services.NewChatService(eventService, appConfig.EventWindow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	profileHandler := handlers.NewProfileHandler(profileService)
	personaHandler := handlers.NewPersonaHandler(personaService)
	voiceHandler := handlers.NewVoiceHandler(voiceService)
	chatHandler := handlers.NewChatHandler(chatService)
	eventHandler := handlers.NewEventHandler(eventService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded voice samples
	router.Static("/static/mom_voices", appConfig.VoiceDir)

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware())

	api.GET("/profile", profileHandler.GetProfile)
	api.POST("/profile", profileHandler.SaveProfile)

	mom := api.Group("/mom")
	mom.POST("/personality", personaHandler.SavePersonality)
	mom.GET("/profile", personaHandler.GetMomProfile)
	mom.POST("/upload_voice", voiceHandler.UploadVoice)

	api.GET("/list_voices/:user_id", voiceHandler.ListVoices)
	api.POST("/chat", chatHandler.Chat)
	api.GET("/events", eventHandler.GetEvents)

	log.Infof("Starting SerenAI backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
