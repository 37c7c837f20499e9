package channels

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ytkit/transcript-api/api/types"
	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/services/store"
)

// List handles channel listing requests
// @Summary      List stored channels
// @Description  List every channel with at least one saved transcript, with video counts, ordered by name
// @Tags         channels
// @Produce      json
// @Param        db query string false "Override the store path"
// @Success      200 {object} types.ChannelsResponse "Stored channels"
// @Router       /api/v1/channels [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, err := database.Initialize(deps.StorePath(c.Query("db")), false)
		if err != nil {
			types.Error(c, err)
			return
		}
		defer db.Close()

		channels, err := store.NewRepository(db.DB).ListChannels(c.Request.Context())
		if err != nil {
			types.Error(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ChannelsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Channels:     channels,
			Count:        len(channels),
		})
	}
}

// ListVideos handles per-channel video listing requests
// @Summary      List a channel's saved videos
// @Description  List the saved videos of one channel, newest upload first
// @Tags         channels
// @Produce      json
// @Param        channel_id path string true "Channel ID"
// @Param        db query string false "Override the store path"
// @Success      200 {object} types.VideosResponse "Saved videos"
// @Router       /api/v1/channels/{channel_id}/videos [get]
func ListVideos(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, err := database.Initialize(deps.StorePath(c.Query("db")), false)
		if err != nil {
			types.Error(c, err)
			return
		}
		defer db.Close()

		videos, err := store.NewRepository(db.DB).ListVideos(c.Request.Context(), c.Param("channel_id"))
		if err != nil {
			types.Error(c, err)
			return
		}

		c.JSON(http.StatusOK, types.VideosResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Videos:       videos,
			Count:        len(videos),
		})
	}
}
