package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/services/extraction"
	"github.com/ytkit/transcript-api/internal/services/store"
	"github.com/ytkit/transcript-api/pkg/config"
	"github.com/ytkit/transcript-api/pkg/format"
)

var savedFormat string

// savedCmd represents the saved command
var savedCmd = &cobra.Command{
	Use:   "saved VIDEO_ID",
	Short: "Print a saved transcript",
	Long: `Print a previously saved transcript from the store without
contacting the caption source.`,
	Args: cobra.ExactArgs(1),
	RunE: runSaved,
}

func init() {
	rootCmd.AddCommand(savedCmd)

	savedCmd.Flags().StringVarP(&savedFormat, "format", "f", extraction.FormatText, "output format: text, json or doc")
}

func runSaved(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	videoID := args[0]

	db, err := database.Initialize(storePath(cfg), cfg.Database.Verbose)
	if err != nil {
		return cliError(err)
	}
	defer db.Close()

	repo := store.NewRepository(db.DB)

	video, err := repo.GetVideo(cmd.Context(), videoID)
	if err != nil {
		return cliError(err)
	}
	segments, err := repo.GetSegments(cmd.Context(), videoID)
	if err != nil {
		return cliError(err)
	}

	out := cmd.OutOrStdout()
	switch savedFormat {
	case extraction.FormatJSON:
		encoded, err := json.MarshalIndent(format.JSON(videoID, segments), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(encoded))
	case extraction.FormatDoc:
		fmt.Fprintln(out, format.Doc(segments, video.Title))
	default:
		fmt.Fprintln(out, format.Text(segments))
	}
	return nil
}
