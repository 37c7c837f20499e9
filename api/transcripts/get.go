package transcripts

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ytkit/transcript-api/api/types"
	"github.com/ytkit/transcript-api/internal/services/extraction"
)

// Get handles transcript extraction requests
// @Summary      Extract a video transcript
// @Description  Fetch the caption transcript for a YouTube video, optionally saving it to the store, rendered as plain text, structured JSON or a collapsible HTML document
// @Tags         transcripts
// @Produce      json
// @Param        video_id path string true "YouTube video ID or URL"
// @Param        format query string false "Output format: text, json or doc" default(json)
// @Param        lang query string false "Comma-separated caption language preference" default(en)
// @Param        save query boolean false "Persist the transcript to the store"
// @Param        db query string false "Override the store path"
// @Success      200 {object} types.TranscriptResponse "Extracted transcript"
// @Failure      400 {object} types.BaseResponse "Invalid format or language request"
// @Failure      404 {object} types.BaseResponse "Video not found or captions disabled"
// @Failure      502 {object} types.BaseResponse "Caption source failure"
// @Router       /api/v1/transcripts/{video_id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		outputFormat := c.DefaultQuery("format", extraction.FormatJSON)

		var languages []string
		if lang := c.Query("lang"); lang != "" {
			for _, code := range strings.Split(lang, ",") {
				if code = strings.TrimSpace(code); code != "" {
					languages = append(languages, code)
				}
			}
		}

		save := c.Query("save") == "true" || c.Query("save") == "1"

		result, err := deps.Extractor.Extract(c.Request.Context(), c.Param("video_id"), extraction.Options{
			Languages: languages,
			Format:    outputFormat,
			Save:      save,
			StorePath: deps.StorePath(c.Query("db")),
		})
		if err != nil {
			types.Error(c, err)
			return
		}

		switch result.Format {
		case extraction.FormatDoc:
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(result.Text))
		case extraction.FormatText:
			c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result.Text))
		default:
			c.JSON(http.StatusOK, types.TranscriptResponse{
				BaseResponse: types.BaseResponse{
					Status: types.StatusOK,
				},
				VideoID:      result.VideoID,
				Language:     result.Language,
				LanguageCode: result.LanguageCode,
				IsGenerated:  result.IsGenerated,
				Saved:        result.Saved,
				AlreadySaved: result.AlreadySaved,
				Transcript:   result.JSON,
			})
		}
	}
}
