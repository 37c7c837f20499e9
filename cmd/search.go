package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/services/store"
	"github.com/ytkit/transcript-api/pkg/config"
	"github.com/ytkit/transcript-api/pkg/format"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search stored transcripts",
	Long: `Find stored segments whose text contains the query, matched
case-insensitively. Results are grouped by video in playback order.

Example:
  transcript-api search "never gonna"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")

	db, err := database.Initialize(storePath(cfg), cfg.Database.Verbose)
	if err != nil {
		return cliError(err)
	}
	defer db.Close()

	results, err := store.NewRepository(db.DB).Search(cmd.Context(), query)
	if err != nil {
		return cliError(err)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintf(out, "No matches for %q\n", query)
		return nil
	}

	fmt.Fprintf(out, "%d match(es) for %q:\n", len(results), query)
	currentVideo := ""
	for _, r := range results {
		if r.VideoID != currentVideo {
			currentVideo = r.VideoID
			fmt.Fprintf(out, "\n%s - %s (%s)\n", r.ChannelName, r.Title, r.VideoID)
		}
		fmt.Fprintf(out, "  [%s] %s\n", format.Timestamp(r.Start), r.Text)
	}
	return nil
}
