package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/courseatlas/backend/internal/app"
	"github.com/courseatlas/backend/internal/catalog"
	"github.com/courseatlas/backend/internal/clients/openai"
	"github.com/courseatlas/backend/internal/handlers"
	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/server"
	"github.com/courseatlas/backend/internal/services"
	"github.com/courseatlas/backend/internal/store"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration...")
	cfg, err := app.LoadConfig(log)
	if err != nil {
		log.Fatal("Config load failed", "error", err)
	}

	// Catalog + stores
	catalogStore := catalog.NewStore()
	userStore := store.NewUserFileStore(log, cfg.UserFilePath)

	// OpenAI client is optional: without a key the assistant degrades to the
	// keyword fallback and recommendations stay empty.
	var aiClient openai.Client
	if client, cErr := openai.NewClient(log); cErr == nil {
		aiClient = client
	} else if errors.Is(cErr, openai.ErrNotConfigured) {
		log.Warn("OPENAI_API_KEY not set, AI features disabled")
	} else {
		log.Error("Could not init OpenAIClient", "error", cErr)
		os.Exit(1)
	}

	// Services
	log.Info("Setting up services...")
	analyticsService := services.NewAnalyticsService(log, catalogStore)
	cartService := services.NewCartService(log, catalogStore)
	userService := services.NewUserService(log, userStore)
	assistantService := services.NewAssistantService(log, catalogStore, aiClient)
	recommendationService := services.NewRecommendationService(log, catalogStore, aiClient)

	// One-shot embedding precompute; blocks readiness until complete.
	if err := recommendationService.BuildIndex(context.Background()); err != nil {
		log.Warn("Embedding index build failed", "error", err)
	}

	// Handlers
	log.Info("Setting up handlers...")
	catalogHandler := handlers.NewCatalogHandler(log, catalogStore)
	analyticsHandler := handlers.NewAnalyticsHandler(log, analyticsService)
	cartHandler := handlers.NewCartHandler(log, cartService)
	userHandler := handlers.NewUserHandler(log, userService)
	assistantHandler := handlers.NewAssistantHandler(log, assistantService)
	recommendationHandler := handlers.NewRecommendationHandler(log, catalogStore, recommendationService)

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		AllowOrigins:          cfg.AllowOrigins,
		CatalogHandler:        catalogHandler,
		AnalyticsHandler:      analyticsHandler,
		CartHandler:           cartHandler,
		UserHandler:           userHandler,
		AssistantHandler:      assistantHandler,
		RecommendationHandler: recommendationHandler,
	})

	fmt.Printf("Server listening on :%s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
