package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytkit/transcript-api/pkg/config"
)

var storePathFlag string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcript-api",
	Short: "YouTube transcript extractor and store",
	Long: `Transcript API - extract, store and search YouTube video transcripts

Fetch time-coded captions for any public video, render them as plain
text, structured JSON or a collapsible HTML document, and keep them in
a local SQLite store for listing and full-text search.

Examples:
  transcript-api get https://www.youtube.com/watch?v=dQw4w9WgXcQ
  transcript-api get dQw4w9WgXcQ --format text --no-save
  transcript-api search "never gonna"
  transcript-api serve --port 9090`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().StringVar(&storePathFlag, "db", "", "transcript store path (overrides config)")
}

// loadConfig loads the configuration before a command runs. The version
// command works without it.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && cmd.Name() == "version" {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

// storePath resolves the store location: flag first, then config.
func storePath(cfg *config.Config) string {
	if storePathFlag != "" {
		return storePathFlag
	}
	return cfg.Database.Path
}
