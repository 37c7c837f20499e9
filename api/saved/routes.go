package saved

import (
	"github.com/gin-gonic/gin"

	"github.com/ytkit/transcript-api/api/types"
)

// RegisterRoutes registers stored transcript routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/:video_id", Get(deps))
}
