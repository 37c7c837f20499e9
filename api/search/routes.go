package search

import (
	"github.com/gin-gonic/gin"

	"github.com/ytkit/transcript-api/api/types"
)

// RegisterRoutes registers search routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", Get(deps))
}
