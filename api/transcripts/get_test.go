package transcripts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytkit/transcript-api/api/types"
	"github.com/ytkit/transcript-api/internal/services/extraction"
	apperrors "github.com/ytkit/transcript-api/pkg/errors"
	"github.com/ytkit/transcript-api/pkg/format"
)

type fakeExtractor struct {
	result   *extraction.Result
	err      error
	gotInput string
	gotOpts  extraction.Options
}

func (f *fakeExtractor) Extract(ctx context.Context, urlOrID string, opts extraction.Options) (*extraction.Result, error) {
	f.gotInput = urlOrID
	f.gotOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func setupRouter(extractor types.Extractor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	deps := &types.Dependencies{Extractor: extractor}
	RegisterRoutes(engine.Group("/api/v1/transcripts"), deps)
	return engine
}

func TestGetReturnsJSON(t *testing.T) {
	extractor := &fakeExtractor{result: &extraction.Result{
		VideoID:      "dQw4w9WgXcQ",
		Format:       extraction.FormatJSON,
		Language:     "English",
		LanguageCode: "en",
		SegmentCount: 1,
		JSON: &format.TranscriptJSON{
			VideoID:      "dQw4w9WgXcQ",
			SegmentCount: 1,
			Segments:     []format.SegmentJSON{{Text: "Never gonna give you up", Start: 0, Duration: 2.5}},
		},
	}}
	engine := setupRouter(extractor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/dQw4w9WgXcQ", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.TranscriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusOK, resp.Status)
	assert.Equal(t, "dQw4w9WgXcQ", resp.VideoID)
	require.NotNil(t, resp.Transcript)
	assert.Equal(t, "Never gonna give you up", resp.Transcript.Segments[0].Text)

	// JSON is the default format for the HTTP surface.
	assert.Equal(t, extraction.FormatJSON, extractor.gotOpts.Format)
}

func TestGetReturnsPlainText(t *testing.T) {
	extractor := &fakeExtractor{result: &extraction.Result{
		VideoID: "dQw4w9WgXcQ",
		Format:  extraction.FormatText,
		Text:    "Never gonna give you up\nNever gonna let you down",
	}}
	engine := setupRouter(extractor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/dQw4w9WgXcQ?format=text", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "Never gonna give you up\nNever gonna let you down", w.Body.String())
}

func TestGetReturnsHTMLDoc(t *testing.T) {
	extractor := &fakeExtractor{result: &extraction.Result{
		VideoID: "dQw4w9WgXcQ",
		Format:  extraction.FormatDoc,
		Text:    "<!DOCTYPE html><html><head><title>Transcript</title></head></html>",
	}}
	engine := setupRouter(extractor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/dQw4w9WgXcQ?format=doc", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<title>Transcript</title>")
}

func TestGetParsesLanguagesAndSave(t *testing.T) {
	extractor := &fakeExtractor{result: &extraction.Result{Format: extraction.FormatJSON}}
	engine := setupRouter(extractor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/dQw4w9WgXcQ?lang=de,%20en&save=true", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dQw4w9WgXcQ", extractor.gotInput)
	assert.Equal(t, []string{"de", "en"}, extractor.gotOpts.Languages)
	assert.True(t, extractor.gotOpts.Save)
}

func TestGetMapsErrorKindsToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperrors.NotFound("dQw4w9WgXcQ"), http.StatusNotFound},
		{"captions unavailable", apperrors.CaptionsUnavailable("dQw4w9WgXcQ"), http.StatusNotFound},
		{"language unavailable", apperrors.LanguageUnavailable("dQw4w9WgXcQ", []string{"de"}), http.StatusBadRequest},
		{"upstream failure", apperrors.UpstreamFailure("dQw4w9WgXcQ", assert.AnError), http.StatusBadGateway},
		{"storage fault", apperrors.Storage("disk full", assert.AnError), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := setupRouter(&fakeExtractor{err: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/dQw4w9WgXcQ", nil)
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp types.BaseResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, types.StatusError, resp.Status)
			assert.NotEmpty(t, resp.Message)
			// Internal causes never leak into the response body.
			assert.NotContains(t, resp.Message, assert.AnError.Error())
		})
	}
}
