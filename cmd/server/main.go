package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buraq/internal/config"
	"buraq/internal/handler"
	"buraq/internal/repository"
	"buraq/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Buraq X Concierge API")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("Connected to PostgreSQL database")

	// The catalog is reference data; a failed load is fatal because matching
	// decisions must never run against a substitute list.
	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	catalog, err := service.LoadCatalog(loadCtx, repo)
	cancel()
	if err != nil {
		log.Fatalf("Failed to load category catalog: %v", err)
	}
	log.Printf("Loaded %d categories", len(catalog.ListAll()))

	var aiClient service.AIClient
	if cfg.OpenAI.Enabled {
		aiClient = service.NewOpenAIClient(&cfg.OpenAI)
		log.Printf("OpenAI client initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
		log.Printf("   - Embedding model: %s", cfg.OpenAI.EmbeddingModel)
	} else {
		log.Println("OpenAI is disabled - classification and ranking use the deterministic fallbacks")
		log.Println("   Set OPENAI_API_KEY environment variable to enable AI features")
	}

	intentExtractor := service.NewIntentExtractor(aiClient, catalog)
	ranker := service.NewRanker(aiClient)
	searchService := service.NewSearchService(repo, ranker, cfg.Search.TopK)
	chatService := service.NewChatService(intentExtractor, searchService, repo)

	log.Println("Services initialized")

	chatHandler := handler.NewChatHandler(chatService, cfg.Search.MaxMessageChars)
	listingHandler := handler.NewListingHandler(repo, catalog)
	categoryHandler := handler.NewCategoryHandler(catalog)
	suggestionHandler := handler.NewSuggestionHandler(repo)
	embeddingHandler := handler.NewEmbeddingHandler(repo, cfg.OpenAI.EmbeddingDimensions)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "buraq-concierge-api",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", chatHandler.Chat)

		apiV1.GET("/categories", categoryHandler.List)

		apiV1.GET("/listings", listingHandler.List)
		apiV1.GET("/listings/:id", listingHandler.Get)
		apiV1.POST("/listings", listingHandler.Create)

		// Admin routes; the deployment fronts these with its auth layer
		apiV1.GET("/admin/listings", listingHandler.AdminList)
		apiV1.POST("/admin/listings/:id/approve", listingHandler.Approve)
		apiV1.POST("/admin/listings/:id/reject", listingHandler.Reject)
		apiV1.POST("/admin/listings/:id/feature", listingHandler.ToggleFeatured)
		apiV1.GET("/admin/suggestions", suggestionHandler.List)

		apiV1.POST("/embeddings/batch", embeddingHandler.BatchUpdate)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}
