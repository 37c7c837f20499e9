package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ytkit/transcript-api/internal/models"
	"github.com/ytkit/transcript-api/internal/services/youtube"
	apperrors "github.com/ytkit/transcript-api/pkg/errors"
	"github.com/ytkit/transcript-api/pkg/format"
)

// Repository implements TranscriptRepository on a gorm handle.
type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements TranscriptRepository interface
var _ TranscriptRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save persists the channel, video and segments in one transaction.
// The existence check runs first so a repeat save touches nothing.
func (r *Repository) Save(ctx context.Context, meta *youtube.VideoMetadata, transcript *youtube.Transcript) (*SaveResult, error) {
	exists, err := r.Has(ctx, meta.VideoID)
	if err != nil {
		return nil, err
	}
	if exists {
		return &SaveResult{VideoID: meta.VideoID, AlreadyExisted: true}, nil
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// First writer wins: an existing channel row keeps its name and URL.
		channel := models.Channel{
			ChannelID:   meta.ChannelID,
			ChannelName: meta.ChannelName,
			ChannelURL:  meta.ChannelURL,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&channel).Error; err != nil {
			return err
		}

		video := models.Video{
			VideoID:      meta.VideoID,
			ChannelID:    meta.ChannelID,
			Title:        meta.Title,
			UploadDate:   meta.UploadDate,
			DurationSecs: meta.DurationSecs,
			Language:     transcript.Language,
			LanguageCode: transcript.LanguageCode,
			IsGenerated:  transcript.IsGenerated,
		}
		if err := tx.Create(&video).Error; err != nil {
			return err
		}

		if len(transcript.Segments) == 0 {
			return nil
		}

		segments := make([]models.Segment, len(transcript.Segments))
		for i, seg := range transcript.Segments {
			segments[i] = models.Segment{
				VideoID:  meta.VideoID,
				Seq:      i,
				Text:     seg.Text,
				Start:    seg.Start,
				Duration: seg.Duration,
			}
		}
		return tx.CreateInBatches(segments, 500).Error
	})
	if err != nil {
		return nil, apperrors.Storage("saving transcript", err)
	}

	return &SaveResult{VideoID: meta.VideoID}, nil
}

func (r *Repository) Has(ctx context.Context, videoID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("video_id = ?", videoID).
		Count(&count).Error; err != nil {
		return false, apperrors.Storage("checking for stored transcript", err)
	}
	return count > 0, nil
}

func (r *Repository) GetVideo(ctx context.Context, videoID string) (*VideoSummary, error) {
	var summary VideoSummary
	err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Select(`videos.video_id, videos.title, videos.channel_id, channels.channel_name,
			videos.upload_date, videos.duration_secs, videos.language, videos.language_code,
			videos.is_generated, videos.created_at,
			(SELECT COUNT(*) FROM segments WHERE segments.video_id = videos.video_id) AS segment_count`).
		Joins("JOIN channels ON channels.channel_id = videos.channel_id").
		Where("videos.video_id = ?", videoID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(videoID)
		}
		return nil, apperrors.Storage("getting video", err)
	}
	return &summary, nil
}

func (r *Repository) GetSegments(ctx context.Context, videoID string) ([]models.Segment, error) {
	var segments []models.Segment
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("seq ASC").
		Find(&segments).Error; err != nil {
		return nil, apperrors.Storage("getting segments", err)
	}
	return segments, nil
}

// GetText renders a stored transcript as plain text. Unknown videos have
// no segments and render as the empty string.
func (r *Repository) GetText(ctx context.Context, videoID string) (string, error) {
	segments, err := r.GetSegments(ctx, videoID)
	if err != nil {
		return "", err
	}
	return format.Text(segments), nil
}

// GetDocument renders a stored transcript as an HTML document, titled
// with the stored video title unless the caller supplies one.
func (r *Repository) GetDocument(ctx context.Context, videoID, title string) (string, error) {
	segments, err := r.GetSegments(ctx, videoID)
	if err != nil {
		return "", err
	}
	if title == "" {
		var video models.Video
		if err := r.db.WithContext(ctx).First(&video, "video_id = ?", videoID).Error; err == nil {
			title = video.Title
		}
	}
	return format.Doc(segments, title), nil
}

func (r *Repository) ListChannels(ctx context.Context) ([]ChannelSummary, error) {
	var channels []ChannelSummary
	if err := r.db.WithContext(ctx).
		Model(&models.Channel{}).
		Select(`channels.channel_id, channels.channel_name, channels.channel_url,
			COUNT(videos.video_id) AS video_count`).
		Joins("LEFT JOIN videos ON videos.channel_id = channels.channel_id").
		Group("channels.channel_id").
		Order("channels.channel_name ASC").
		Find(&channels).Error; err != nil {
		return nil, apperrors.Storage("listing channels", err)
	}
	return channels, nil
}

func (r *Repository) ListVideos(ctx context.Context, channelID string) ([]VideoSummary, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Select(`videos.video_id, videos.title, videos.channel_id, channels.channel_name,
			videos.upload_date, videos.duration_secs, videos.language, videos.language_code,
			videos.is_generated, videos.created_at,
			(SELECT COUNT(*) FROM segments WHERE segments.video_id = videos.video_id) AS segment_count`).
		Joins("JOIN channels ON channels.channel_id = videos.channel_id")

	if channelID != "" {
		query = query.Where("videos.channel_id = ?", channelID)
	}

	var videos []VideoSummary
	if err := query.
		Order("videos.upload_date DESC, videos.video_id ASC").
		Find(&videos).Error; err != nil {
		return nil, apperrors.Storage("listing videos", err)
	}
	return videos, nil
}

// Search matches the query as a case-insensitive substring of segment
// text. Results come back grouped by video in playback order.
func (r *Repository) Search(ctx context.Context, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.InvalidRequest("search query must not be empty")
	}

	pattern := "%" + escapeLike(query) + "%"

	var results []SearchResult
	if err := r.db.WithContext(ctx).
		Model(&models.Segment{}).
		Select(`segments.video_id, videos.title, channels.channel_name,
			segments.seq, segments.text, segments.start, segments.duration`).
		Joins("JOIN videos ON videos.video_id = segments.video_id").
		Joins("JOIN channels ON channels.channel_id = videos.channel_id").
		Where("LOWER(segments.text) LIKE LOWER(?) ESCAPE '\\'", pattern).
		Order("segments.video_id ASC, segments.seq ASC").
		Find(&results).Error; err != nil {
		return nil, apperrors.Storage("searching segments", err)
	}
	return results, nil
}

// escapeLike neutralizes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
