package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Service version
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]interface{} "Version info"
// @Router       /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Transcript API",
			"version":     "1.0.0",
			"description": "API for extracting and storing YouTube transcripts",
			"status":      "running",
		})
	}
}
