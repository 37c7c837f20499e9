package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ytkit/transcript-api/api/types"
	"github.com/ytkit/transcript-api/internal/database"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service liveness and whether the configured store is reachable
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Service status"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"store":     getStoreStatus(deps),
		})
	}
}

// getStoreStatus probes the configured store path. The store is opened
// per request elsewhere, so the probe opens and closes its own handle.
func getStoreStatus(deps *types.Dependencies) gin.H {
	path := deps.StorePath("")
	if path == "" {
		return gin.H{"status": "not configured"}
	}

	db, err := database.Initialize(path, false)
	if err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}
	defer db.Close()

	if err := db.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy", "path": path}
}
