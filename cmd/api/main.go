package main

import (
	"context"
	"fmt"
	"log"

	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"prepper/internal/api"
	"prepper/internal/assistant"
	"prepper/internal/config"
	"prepper/internal/platform/gemini"
	"prepper/internal/platform/mealdb"
	"prepper/internal/recipe"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}

	addr := pflag.String("addr", ":"+cfg.Port, "listen address")
	pflag.Parse()

	// The delegated path is selected once here, by capability. Without a key
	// the assistant answers every message with the local demo responder.
	var delegate assistant.Delegate
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			panic(fmt.Errorf("error creating gemini client: %w", err))
		}
		defer geminiClient.Close()
		delegate = geminiClient
		log.Printf("Assistant running in AI mode")
	} else {
		log.Printf("GEMINI_API_KEY not set, assistant running in demo mode")
	}

	handler := api.NewHandler(mealdb.NewClient(), assistant.New(delegate), recipe.NewNormalizer(nil))

	r := gin.Default()

	// Configure CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/api/recipes/search", handler.SearchRecipes)
	r.GET("/api/recipes/byId", handler.GetRecipeByID)
	r.GET("/api/recipes/random", handler.RandomRecipe)
	r.GET("/health", handler.Health)
	r.POST("/api/ai/chat", handler.Chat)

	r.Run(*addr)
}
