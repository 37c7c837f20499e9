package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ytkit/transcript-api/api/channels"
	"github.com/ytkit/transcript-api/api/health"
	"github.com/ytkit/transcript-api/api/saved"
	"github.com/ytkit/transcript-api/api/search"
	"github.com/ytkit/transcript-api/api/transcripts"
	"github.com/ytkit/transcript-api/api/types"
	"github.com/ytkit/transcript-api/api/version"
	_ "github.com/ytkit/transcript-api/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")

	// Extraction hits the caption source upstream, so it gets the
	// tightest limit (2 req/s, burst of 5).
	transcriptsGroup := v1.Group("/transcripts")
	transcriptsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 5))
	transcripts.RegisterRoutes(transcriptsGroup, deps)

	// Store-backed reads are cheap (10 req/s, burst of 20)
	savedGroup := v1.Group("/saved")
	savedGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	saved.RegisterRoutes(savedGroup, deps)

	channelsGroup := v1.Group("/channels")
	channelsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	channels.RegisterRoutes(channelsGroup, deps)

	// Search scans segment text (5 req/s, burst of 10)
	searchGroup := v1.Group("/search")
	searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	search.RegisterRoutes(searchGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
