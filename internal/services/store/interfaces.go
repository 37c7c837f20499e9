// Package store persists transcripts in the embedded SQLite store and
// answers the listing, retrieval and search queries over it.
package store

import (
	"context"
	"time"

	"github.com/ytkit/transcript-api/internal/models"
	"github.com/ytkit/transcript-api/internal/services/youtube"
)

// SaveResult reports the outcome of one save call.
type SaveResult struct {
	VideoID        string `json:"video_id"`
	AlreadyExisted bool   `json:"already_existed"`
}

// ChannelSummary is one row of the channel listing.
type ChannelSummary struct {
	ChannelID   string  `json:"channel_id"`
	ChannelName string  `json:"channel_name"`
	ChannelURL  *string `json:"channel_url,omitempty"`
	VideoCount  int64   `json:"video_count"`
}

// VideoSummary is one row of a video listing.
type VideoSummary struct {
	VideoID      string     `json:"video_id"`
	Title        string     `json:"title"`
	ChannelID    string     `json:"channel_id"`
	ChannelName  string     `json:"channel_name"`
	UploadDate   *time.Time `json:"upload_date,omitempty"`
	DurationSecs *int       `json:"duration_secs,omitempty"`
	Language     string     `json:"language,omitempty"`
	LanguageCode string     `json:"language_code,omitempty"`
	IsGenerated  bool       `json:"is_generated"`
	SegmentCount int64      `json:"segment_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SearchResult is one matching segment with enough context to locate it.
type SearchResult struct {
	VideoID     string  `json:"video_id"`
	Title       string  `json:"title"`
	ChannelName string  `json:"channel_name"`
	Seq         int     `json:"seq"`
	Text        string  `json:"text"`
	Start       float64 `json:"start"`
	Duration    float64 `json:"duration"`
}

// TranscriptRepository is the persistence surface the extraction service
// and the API handlers depend on.
type TranscriptRepository interface {
	// Save persists a transcript with its video and channel metadata in
	// one transaction. Saving an already-stored video is a no-op that
	// reports AlreadyExisted.
	Save(ctx context.Context, meta *youtube.VideoMetadata, transcript *youtube.Transcript) (*SaveResult, error)

	// Has reports whether a transcript for the video is stored.
	Has(ctx context.Context, videoID string) (bool, error)

	// GetVideo returns a stored video's summary, or a not-found error.
	GetVideo(ctx context.Context, videoID string) (*VideoSummary, error)

	// GetSegments returns a stored video's segments in seq order. An
	// unknown video yields an empty slice, not an error.
	GetSegments(ctx context.Context, videoID string) ([]models.Segment, error)

	// GetText returns a stored transcript as newline-joined plain text,
	// empty for an unknown video.
	GetText(ctx context.Context, videoID string) (string, error)

	// GetDocument renders a stored transcript as an HTML document. With
	// an empty title the stored video title is used. An unknown video
	// yields an empty string.
	GetDocument(ctx context.Context, videoID, title string) (string, error)

	// ListChannels returns every stored channel with its video count,
	// ordered by channel name.
	ListChannels(ctx context.Context) ([]ChannelSummary, error)

	// ListVideos returns stored videos newest-upload first, optionally
	// restricted to one channel.
	ListVideos(ctx context.Context, channelID string) ([]VideoSummary, error)

	// Search finds segments whose text contains the query, matched
	// case-insensitively, ordered by video then playback position.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
