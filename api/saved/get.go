package saved

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ytkit/transcript-api/api/types"
	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/services/extraction"
	"github.com/ytkit/transcript-api/internal/services/store"
	apperrors "github.com/ytkit/transcript-api/pkg/errors"
	"github.com/ytkit/transcript-api/pkg/format"
)

// Get handles stored transcript retrieval
// @Summary      Retrieve a saved transcript
// @Description  Read a previously saved transcript from the store without contacting the caption source
// @Tags         saved
// @Produce      json
// @Param        video_id path string true "YouTube video ID"
// @Param        format query string false "Output format: text, json or doc" default(json)
// @Param        db query string false "Override the store path"
// @Success      200 {object} types.TranscriptResponse "Stored transcript"
// @Failure      400 {object} types.BaseResponse "Unknown output format"
// @Failure      404 {object} types.BaseResponse "Video was never saved"
// @Router       /api/v1/saved/{video_id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID := c.Param("video_id")
		outputFormat := c.DefaultQuery("format", extraction.FormatJSON)

		switch outputFormat {
		case extraction.FormatText, extraction.FormatJSON, extraction.FormatDoc:
		default:
			types.Error(c, apperrors.Newf(apperrors.KindInvalidRequest,
				"unknown format %q: expected text, json or doc", outputFormat))
			return
		}

		db, err := database.Initialize(deps.StorePath(c.Query("db")), false)
		if err != nil {
			types.Error(c, err)
			return
		}
		defer db.Close()

		repo := store.NewRepository(db.DB)

		video, err := repo.GetVideo(c.Request.Context(), videoID)
		if err != nil {
			types.Error(c, err)
			return
		}

		segments, err := repo.GetSegments(c.Request.Context(), videoID)
		if err != nil {
			types.Error(c, err)
			return
		}

		switch outputFormat {
		case extraction.FormatDoc:
			c.Data(http.StatusOK, "text/html; charset=utf-8",
				[]byte(format.Doc(segments, video.Title)))
		case extraction.FormatText:
			c.Data(http.StatusOK, "text/plain; charset=utf-8",
				[]byte(format.Text(segments)))
		default:
			c.JSON(http.StatusOK, types.TranscriptResponse{
				BaseResponse: types.BaseResponse{
					Status: types.StatusOK,
				},
				VideoID:      videoID,
				Language:     video.Language,
				LanguageCode: video.LanguageCode,
				IsGenerated:  video.IsGenerated,
				Saved:        true,
				Transcript:   format.JSON(videoID, segments),
			})
		}
	}
}
