package types

import (
	"github.com/gin-gonic/gin"

	"github.com/ytkit/transcript-api/internal/services/store"
	apperrors "github.com/ytkit/transcript-api/pkg/errors"
	"github.com/ytkit/transcript-api/pkg/format"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// TranscriptResponse wraps a structured transcript extraction.
type TranscriptResponse struct {
	BaseResponse
	VideoID      string                 `json:"video_id"`
	Language     string                 `json:"language,omitempty"`
	LanguageCode string                 `json:"language_code,omitempty"`
	IsGenerated  bool                   `json:"is_generated"`
	Saved        bool                   `json:"saved"`
	AlreadySaved bool                   `json:"already_saved,omitempty"`
	Transcript   *format.TranscriptJSON `json:"transcript"`
}

// ChannelsResponse for the channel listing
type ChannelsResponse struct {
	BaseResponse
	Channels []store.ChannelSummary `json:"channels"`
	Count    int                    `json:"count"`
}

// VideosResponse for video listings
type VideosResponse struct {
	BaseResponse
	Videos []store.VideoSummary `json:"videos"`
	Count  int                  `json:"count"`
}

// SearchResponse for segment search
type SearchResponse struct {
	BaseResponse
	Query       string               `json:"query"`
	ResultCount int                  `json:"result_count"`
	Results     []store.SearchResult `json:"results"`
}

// Error writes the standard error envelope with the status the error's
// kind maps to. Handlers never inspect error types themselves.
func Error(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), BaseResponse{
		Status:  StatusError,
		Message: apperrors.Message(err),
	})
}
