package channels

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

	repo := store.NewRepository(db.DB)
	transcript := &youtube.Transcript{
		Language:     "English",
		LanguageCode: "en",
		Segments:     []youtube.Segment{{Text: "hello", Start: 0, Duration: 1}},
	}

	_, err = repo.Save(context.Background(), &youtube.VideoMetadata{
		VideoID:     "dQw4w9WgXcQ",
		Title:       "Never Gonna Give You Up",
		ChannelID:   "UCuAXFkgsw1L7xaCfnd5JJOw",
		ChannelName: "Rick Astley",
	}, transcript)
	require.NoError(t, err)

	_, err = repo.Save(context.Background(), &youtube.VideoMetadata{
		VideoID:     "abcdefghijk",
		Title:       "Some Other Video",
		ChannelID:   "UCotherchannelxxxxxxxxxx",
		ChannelName: "Another Channel",
	}, transcript)
	require.NoError(t, err)

	return dbPath
}

func setupRouter(dbPath string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	deps := &types.Dependencies{
		Config: &config.Config{Database: config.DatabaseConfig{Path: dbPath}},
	}
	RegisterRoutes(engine.Group("/api/v1/channels"), deps)
	return engine
}

func TestListChannels(t *testing.T) {
	engine := setupRouter(seedStore(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/channels", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ChannelsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusOK, resp.Status)
	require.Equal(t, 2, resp.Count)

	// Ordered by channel name.
	assert.Equal(t, "Another Channel", resp.Channels[0].ChannelName)
	assert.Equal(t, "Rick Astley", resp.Channels[1].ChannelName)
	assert.EqualValues(t, 1, resp.Channels[0].VideoCount)
}

func TestListChannelsEmptyStore(t *testing.T) {
	engine := setupRouter(filepath.Join(t.TempDir(), "empty.db"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/channels", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ChannelsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
}

func TestListChannelVideos(t *testing.T) {
	engine := setupRouter(seedStore(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/channels/UCuAXFkgsw1L7xaCfnd5JJOw/videos", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.VideosResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "dQw4w9WgXcQ", resp.Videos[0].VideoID)
	assert.Equal(t, "Rick Astley", resp.Videos[0].ChannelName)
}

func TestListChannelVideosUnknownChannel(t *testing.T) {
	engine := setupRouter(seedStore(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/channels/UCnobodyhomexxxxxxxxxxxx/videos", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.VideosResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
}
