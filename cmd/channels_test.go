package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/services/store"
	"github.com/ytkit/transcript-api/internal/services/youtube"
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

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	t.Cleanup(func() { storePathFlag = "" })

	require.NoError(t, root.Execute())
	return buf.String()
}

func TestChannelsCommandEmptyStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "transcripts.db")

	output := runCommand(t, "channels", "--db", dbPath)
	assert.Contains(t, output, "No channels in the store yet")
}

func TestChannelsCommandListsChannels(t *testing.T) {
	output := runCommand(t, "channels", "--db", seedStore(t))
	assert.Contains(t, output, "Rick Astley")
	assert.Contains(t, output, "1 video(s)")
}

func TestVideosCommand(t *testing.T) {
	output := runCommand(t, "videos", "--db", seedStore(t))
	assert.Contains(t, output, "dQw4w9WgXcQ")
	assert.Contains(t, output, "Never Gonna Give You Up")
}

func TestVideosCommandFiltersByChannel(t *testing.T) {
	dbPath := seedStore(t)

	output := runCommand(t, "videos", "UCuAXFkgsw1L7xaCfnd5JJOw", "--db", dbPath)
	assert.Contains(t, output, "dQw4w9WgXcQ")

	output = runCommand(t, "videos", "UCnobodyhomexxxxxxxxxxxx", "--db", dbPath)
	assert.Contains(t, output, "No saved videos found")
}

func TestSavedCommand(t *testing.T) {
	output := runCommand(t, "saved", "dQw4w9WgXcQ", "--db", seedStore(t))
	assert.Contains(t, output, "Never gonna give you up\nNever gonna let you down")
}

func TestSavedCommandUnknownVideo(t *testing.T) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"saved", "nosuchvideo", "--db", filepath.Join(t.TempDir(), "transcripts.db")})
	t.Cleanup(func() { storePathFlag = "" })

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSearchCommand(t *testing.T) {
	output := runCommand(t, "search", "GIVE YOU UP", "--db", seedStore(t))
	assert.Contains(t, output, "1 match(es)")
	assert.Contains(t, output, "[00:00] Never gonna give you up")
}

func TestSearchCommandNoMatches(t *testing.T) {
	output := runCommand(t, "search", "absent", "--db", seedStore(t))
	assert.Contains(t, output, `No matches for "absent"`)
}

func TestMigrateCommands(t *testing.T) {
	dbPath := seedStore(t)

	output := runCommand(t, "migrate", "up", "--db", dbPath)
	assert.Contains(t, output, "up to date")

	output = runCommand(t, "migrate", "status", "--db", dbPath)
	assert.Contains(t, output, "Channels: 1")
	assert.Contains(t, output, "Videos:   1")
	assert.Contains(t, output, "Segments: 2")
}
