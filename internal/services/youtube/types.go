package youtube

import (
	"context"
	"time"
)

// Segment is one timed caption unit as fetched from the caption source.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// GetText implements format.Snippet.
func (s Segment) GetText() string { return s.Text }

// GetStart implements format.Snippet.
func (s Segment) GetStart() float64 { return s.Start }

// GetDuration implements format.Snippet.
func (s Segment) GetDuration() float64 { return s.Duration }

// Transcript is the result of one caption fetch. Segments is a concrete
// slice in fetch order, so it can be traversed more than once (saved
// first, formatted after) without losing data.
type Transcript struct {
	Language     string
	LanguageCode string
	IsGenerated  bool
	Segments     []Segment
}

// VideoMetadata is the descriptive record produced by one metadata fetch.
type VideoMetadata struct {
	VideoID      string
	Title        string
	ChannelID    string
	ChannelName  string
	ChannelURL   *string
	UploadDate   *time.Time
	DurationSecs *int
}

// CaptionFetcher fetches the ordered caption segments for a video.
type CaptionFetcher interface {
	FetchTranscript(ctx context.Context, videoID string, languages []string) (*Transcript, error)
}

// MetadataFetcher fetches a video's descriptive metadata.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, videoID string) (*VideoMetadata, error)
}

// playerResponse is the subset of the player endpoint payload we read.
type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions struct {
		TracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	VideoDetails struct {
		VideoID       string `json:"videoId"`
		Title         string `json:"title"`
		ChannelID     string `json:"channelId"`
		Author        string `json:"author"`
		LengthSeconds string `json:"lengthSeconds"`
	} `json:"videoDetails"`
	Microformat struct {
		Renderer struct {
			UploadDate      string `json:"uploadDate"`
			OwnerProfileURL string `json:"ownerProfileUrl"`
		} `json:"playerMicroformatRenderer"`
	} `json:"microformat"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" marks auto-generated tracks
	Name         struct {
		SimpleText string `json:"simpleText"`
		Runs       []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"name"`
}

// displayName returns the track's human-readable language name.
func (t captionTrack) displayName() string {
	if t.Name.SimpleText != "" {
		return t.Name.SimpleText
	}
	if len(t.Name.Runs) > 0 {
		return t.Name.Runs[0].Text
	}
	return t.LanguageCode
}

// transcriptEvents is the json3 timedtext payload shape.
type transcriptEvents struct {
	Events []struct {
		StartMs    int64 `json:"tStartMs"`
		DurationMs int64 `json:"dDurationMs"`
		Segs       []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}
