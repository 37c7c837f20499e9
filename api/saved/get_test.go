package saved

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytkit/transcript-api/api/types"
	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/services/store"
	"github.com/ytkit/transcript-api/internal/services/youtube"
	"github.com/ytkit/transcript-api/pkg/config"
)

func seedStore(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "transcripts.db")

	db, err := database.Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()

	_, err = store.NewRepository(db.DB).Save(context.Background(),
		&youtube.VideoMetadata{
			VideoID:     "dQw4w9WgXcQ",
			Title:       "Never Gonna Give You Up",
			ChannelID:   "UCuAXFkgsw1L7xaCfnd5JJOw",
			ChannelName: "Rick Astley",
		},
		&youtube.Transcript{
			Language:     "English",
			LanguageCode: "en",
			Segments: []youtube.Segment{
				{Text: "Never gonna give you up", Start: 0, Duration: 2.5},
				{Text: "Never gonna let you down", Start: 2.5, Duration: 2.5},
			},
		})
	require.NoError(t, err)

	return dbPath
}

func setupRouter(dbPath string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	deps := &types.Dependencies{
		Config: &config.Config{Database: config.DatabaseConfig{Path: dbPath}},
	}
	RegisterRoutes(engine.Group("/api/v1/saved"), deps)
	return engine
}

func TestGetReturnsStoredTranscript(t *testing.T) {
	engine := setupRouter(seedStore(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/saved/dQw4w9WgXcQ", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.TranscriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusOK, resp.Status)
	assert.True(t, resp.Saved)
	assert.Equal(t, "English", resp.Language)
	assert.Equal(t, "en", resp.LanguageCode)
	require.NotNil(t, resp.Transcript)
	require.Len(t, resp.Transcript.Segments, 2)
	assert.Equal(t, "Never gonna give you up", resp.Transcript.Segments[0].Text)
}

func TestGetRendersStoredText(t *testing.T) {
	engine := setupRouter(seedStore(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/saved/dQw4w9WgXcQ?format=text", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Never gonna give you up\nNever gonna let you down", w.Body.String())
}

func TestGetRendersStoredDocWithTitle(t *testing.T) {
	engine := setupRouter(seedStore(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/saved/dQw4w9WgXcQ?format=doc", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<title>Never Gonna Give You Up</title>")
}

func TestGetRejectsUnknownFormat(t *testing.T) {
	engine := setupRouter(seedStore(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/saved/dQw4w9WgXcQ?format=xml", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp types.BaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusError, resp.Status)
	assert.Contains(t, resp.Message, "xml")
}

func TestGetUnknownVideoIs404(t *testing.T) {
	engine := setupRouter(seedStore(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/saved/nosuchvideo", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp types.BaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusError, resp.Status)
}
