package models

import "time"

// Channel represents a YouTube channel with at least one saved transcript.
// Rows are created implicitly on the first save of one of the channel's
// videos and never deleted; name and URL keep their first-written values.
type Channel struct {
	ChannelID   string  `json:"channel_id" gorm:"primaryKey"`
	ChannelName string  `json:"channel_name" gorm:"not null;index"`
	ChannelURL  *string `json:"channel_url"`
	Videos      []Video `json:"videos,omitempty" gorm:"foreignKey:ChannelID"`
}

// Video represents one saved video's metadata. A video belongs to exactly
// one channel; rows are insert-if-absent and never updated.
type Video struct {
	VideoID      string     `json:"video_id" gorm:"primaryKey;size:11"`
	ChannelID    string     `json:"channel_id" gorm:"not null;index"`
	Title        string     `json:"title" gorm:"not null"`
	UploadDate   *time.Time `json:"upload_date"`
	DurationSecs *int       `json:"duration_secs"`
	Language     string     `json:"language"`
	LanguageCode string     `json:"language_code"`
	IsGenerated  bool       `json:"is_generated"`
	CreatedAt    time.Time  `json:"created_at"`
	Segments     []Segment  `json:"segments,omitempty" gorm:"foreignKey:VideoID"`
}

// Segment is one stored caption unit. Seq is the 0-based playback ordinal,
// gapless per video and matching fetch order; rows are written in one
// batch with their parent Video and never individually mutated.
type Segment struct {
	VideoID  string  `json:"video_id" gorm:"primaryKey;size:11"`
	Seq      int     `json:"seq" gorm:"primaryKey;autoIncrement:false"`
	Text     string  `json:"text" gorm:"not null"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// GetText implements format.Snippet.
func (s Segment) GetText() string { return s.Text }

// GetStart implements format.Snippet.
func (s Segment) GetStart() float64 { return s.Start }

// GetDuration implements format.Snippet.
func (s Segment) GetDuration() float64 { return s.Duration }
