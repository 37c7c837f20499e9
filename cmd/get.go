package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytkit/transcript-api/internal/services/extraction"
	"github.com/ytkit/transcript-api/internal/services/youtube"
	"github.com/ytkit/transcript-api/pkg/config"
	apperrors "github.com/ytkit/transcript-api/pkg/errors"
)

var (
	getFormat string
	getLangs  []string
	getOutput string
	getNoSave bool
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get URL_OR_ID",
	Short: "Extract a video transcript",
	Long: `Extract the caption transcript for a YouTube video.

Accepts a watch URL, a short youtu.be link, an embed/shorts link, or a
bare 11-character video ID. The transcript is saved to the local store
unless --no-save is given.

With the doc format and no --output path, the HTML document is written
under the configured output directory as <channel>/<title>.html when
the video is in the store, and to stdout otherwise.

Examples:
  transcript-api get https://www.youtube.com/watch?v=dQw4w9WgXcQ
  transcript-api get dQw4w9WgXcQ --format text
  transcript-api get dQw4w9WgXcQ -f json -l de,en --no-save
  transcript-api get dQw4w9WgXcQ -f doc -o transcript.html`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&getFormat, "format", "f", extraction.FormatDoc, "output format: text, json or doc")
	getCmd.Flags().StringSliceVarP(&getLangs, "lang", "l", nil, "caption language preference, in priority order")
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "", "write output to this file instead of stdout")
	getCmd.Flags().BoolVar(&getNoSave, "no-save", false, "skip saving the transcript to the store")
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	languages := getLangs
	if len(languages) == 0 {
		languages = cfg.YouTube.DefaultLanguages
	}

	client := youtube.NewClient(youtube.Config{
		UserAgent: cfg.YouTube.UserAgent,
		Timeout:   cfg.YouTube.Timeout,
	})
	svc := extraction.NewService(client, client)

	result, err := svc.Extract(cmd.Context(), args[0], extraction.Options{
		Languages: languages,
		Format:    getFormat,
		Save:      !getNoSave,
		StorePath: storePath(cfg),
	})
	if err != nil {
		return cliError(err)
	}

	if result.Saved {
		if result.AlreadySaved {
			fmt.Fprintf(cmd.ErrOrStderr(), "Transcript for %s was already in the store\n", result.VideoID)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved transcript for %s\n", result.VideoID)
		}
	}

	output := result.Text
	if result.Format == extraction.FormatJSON {
		encoded, err := json.MarshalIndent(result.JSON, "", "  ")
		if err != nil {
			return err
		}
		output = string(encoded)
	}

	switch {
	case getOutput != "":
		return writeOutputFile(cmd, getOutput, output)
	case result.Format == extraction.FormatDoc && result.Metadata != nil:
		path := filepath.Join(cfg.Output.BaseDir,
			sanitizeFilename(result.Metadata.ChannelName),
			sanitizeFilename(result.Metadata.Title)+".html")
		return writeOutputFile(cmd, path, output)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}
}

func writeOutputFile(cmd *cobra.Command, path, content string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}

// sanitizeFilename strips characters that are unsafe in file names on
// common filesystems, plus leading and trailing dots and spaces.
func sanitizeFilename(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '/', '\\', '?', '*', '<', '>', '|', '"':
			return -1
		}
		return r
	}, name)
	cleaned = strings.Trim(cleaned, ". ")
	if cleaned == "" {
		return "untitled"
	}
	return cleaned
}

// cliError strips the kind prefix and internal cause so command errors
// read as plain messages.
func cliError(err error) error {
	return fmt.Errorf("%s", apperrors.Message(err))
}
