package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/services/store"
	"github.com/ytkit/transcript-api/pkg/config"
)

// videosCmd represents the videos command
var videosCmd = &cobra.Command{
	Use:   "videos [CHANNEL_ID]",
	Short: "List saved videos",
	Long: `List saved videos, newest upload first. With a channel ID the
listing is restricted to that channel.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVideos,
}

func init() {
	rootCmd.AddCommand(videosCmd)
}

func runVideos(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	channelID := ""
	if len(args) == 1 {
		channelID = args[0]
	}

	db, err := database.Initialize(storePath(cfg), cfg.Database.Verbose)
	if err != nil {
		return cliError(err)
	}
	defer db.Close()

	videos, err := store.NewRepository(db.DB).ListVideos(cmd.Context(), channelID)
	if err != nil {
		return cliError(err)
	}

	if len(videos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved videos found")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, v := range videos {
		date := "unknown date"
		if v.UploadDate != nil {
			date = v.UploadDate.Format("2006-01-02")
		}
		fmt.Fprintf(out, "%s  %s  %s - %s (%d segments)\n",
			v.VideoID, date, v.ChannelName, v.Title, v.SegmentCount)
	}
	return nil
}
