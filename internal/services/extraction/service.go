package extraction

import (
	"context"

	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/services/store"
	"github.com/ytkit/transcript-api/internal/services/youtube"
	apperrors "github.com/ytkit/transcript-api/pkg/errors"
	"github.com/ytkit/transcript-api/pkg/format"
)

// Output formats accepted by Extract.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDoc  = "doc"
)

// Options controls one extraction.
type Options struct {
	// Languages is the caption language preference, in priority order.
	// Empty means ["en"].
	Languages []string

	// Format is one of text, json or doc. Empty means text.
	Format string

	// Save persists the transcript to the store at StorePath before any
	// output is rendered.
	Save bool

	// StorePath is the sqlite file to save into. Required when Save is set.
	StorePath string
}

// Result is the outcome of one extraction.
type Result struct {
	VideoID      string                 `json:"video_id"`
	Format       string                 `json:"format"`
	Language     string                 `json:"language,omitempty"`
	LanguageCode string                 `json:"language_code,omitempty"`
	IsGenerated  bool                   `json:"is_generated"`
	SegmentCount int                    `json:"segment_count"`
	Saved        bool                   `json:"saved"`
	AlreadySaved bool                   `json:"already_saved"`
	Metadata     *youtube.VideoMetadata `json:"-"`

	// Text carries the rendered output for the text and doc formats;
	// JSON carries the structured payload for the json format.
	Text string                 `json:"-"`
	JSON *format.TranscriptJSON `json:"-"`
}

// Service wires the fetch clients into the extraction flow.
type Service struct {
	captions youtube.CaptionFetcher
	metadata youtube.MetadataFetcher
}

func NewService(captions youtube.CaptionFetcher, metadata youtube.MetadataFetcher) *Service {
	return &Service{captions: captions, metadata: metadata}
}

// Extract resolves the video ID, fetches the transcript, optionally saves
// it, and renders the requested format. Saving happens before formatting
// so a storage fault never leaves partial output behind.
func (s *Service) Extract(ctx context.Context, urlOrID string, opts Options) (*Result, error) {
	videoID, err := ParseVideoID(urlOrID)
	if err != nil {
		return nil, err
	}

	outputFormat := opts.Format
	if outputFormat == "" {
		outputFormat = FormatText
	}
	switch outputFormat {
	case FormatText, FormatJSON, FormatDoc:
	default:
		return nil, apperrors.Newf(apperrors.KindInvalidRequest,
			"unknown format %q: expected text, json or doc", outputFormat)
	}

	languages := opts.Languages
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	transcript, err := s.captions.FetchTranscript(ctx, videoID, languages)
	if err != nil {
		return nil, err
	}

	result := &Result{
		VideoID:      videoID,
		Format:       outputFormat,
		Language:     transcript.Language,
		LanguageCode: transcript.LanguageCode,
		IsGenerated:  transcript.IsGenerated,
		SegmentCount: len(transcript.Segments),
	}

	docTitle := format.DefaultDocTitle
	if opts.Save {
		meta, err := s.metadata.FetchMetadata(ctx, videoID)
		if err != nil {
			return nil, err
		}
		result.Metadata = meta
		docTitle = meta.Title

		saveResult, err := saveTranscript(ctx, opts.StorePath, meta, transcript)
		if err != nil {
			return nil, err
		}
		result.Saved = true
		result.AlreadySaved = saveResult.AlreadyExisted
	}

	switch outputFormat {
	case FormatText:
		result.Text = format.Text(transcript.Segments)
	case FormatJSON:
		result.JSON = format.JSON(videoID, transcript.Segments)
	case FormatDoc:
		result.Text = format.Doc(transcript.Segments, docTitle)
	}

	return result, nil
}

// saveTranscript opens the store for the duration of one save.
func saveTranscript(ctx context.Context, storePath string, meta *youtube.VideoMetadata, transcript *youtube.Transcript) (*store.SaveResult, error) {
	db, err := database.Initialize(storePath, false)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return store.NewRepository(db.DB).Save(ctx, meta, transcript)
}
