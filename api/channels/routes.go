package channels

import (
	"github.com/gin-gonic/gin"

	"github.com/ytkit/transcript-api/api/types"
)

// RegisterRoutes registers channel listing routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", List(deps))
	group.GET("/:channel_id/videos", ListVideos(deps))
}
