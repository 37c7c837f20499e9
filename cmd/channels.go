package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/services/store"
	"github.com/ytkit/transcript-api/pkg/config"
)

// channelsCmd represents the channels command
var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List stored channels",
	Long: `List every channel with at least one saved transcript, together
with the number of saved videos per channel.`,
	Args: cobra.NoArgs,
	RunE: runChannels,
}

func init() {
	rootCmd.AddCommand(channelsCmd)
}

func runChannels(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	db, err := database.Initialize(storePath(cfg), cfg.Database.Verbose)
	if err != nil {
		return cliError(err)
	}
	defer db.Close()

	channels, err := store.NewRepository(db.DB).ListChannels(cmd.Context())
	if err != nil {
		return cliError(err)
	}

	if len(channels) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No channels in the store yet")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, ch := range channels {
		fmt.Fprintf(out, "%s  %s (%d video(s))\n", ch.ChannelID, ch.ChannelName, ch.VideoCount)
	}
	return nil
}
