package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytkit/transcript-api/internal/database"
	"github.com/ytkit/transcript-api/internal/models"
	"github.com/ytkit/transcript-api/internal/services/store"
	"github.com/ytkit/transcript-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Initialize or inspect the transcript store",
	Long: `Manage the transcript store schema.

Available subcommands:
  up      - Create the store and bring its schema up to date
  status  - Show what the store currently holds`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create the store and bring its schema up to date",
	Long: `Open the transcript store, creating the file and any missing
tables or indexes. Existing data is kept.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows store contents
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store status",
	Long:  `Display the store location and its channel, video and segment counts.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	path := storePath(cfg)

	db, err := database.Initialize(path, cfg.Database.Verbose)
	if err != nil {
		return cliError(err)
	}
	defer db.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Store at %s is up to date\n", path)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	path := storePath(cfg)

	db, err := database.Initialize(path, cfg.Database.Verbose)
	if err != nil {
		return cliError(err)
	}
	defer db.Close()

	var channelCount, videoCount, segmentCount int64
	for _, count := range []struct {
		model any
		dest  *int64
	}{
		{&models.Channel{}, &channelCount},
		{&models.Video{}, &videoCount},
		{&models.Segment{}, &segmentCount},
	} {
		if err := db.Model(count.model).Count(count.dest).Error; err != nil {
			return fmt.Errorf("counting store rows: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Store:    %s\n", path)
	fmt.Fprintf(out, "Channels: %d\n", channelCount)
	fmt.Fprintf(out, "Videos:   %d\n", videoCount)
	fmt.Fprintf(out, "Segments: %d\n", segmentCount)

	channels, err := store.NewRepository(db.DB).ListChannels(cmd.Context())
	if err != nil {
		return cliError(err)
	}
	for _, ch := range channels {
		fmt.Fprintf(out, "  %s: %d video(s)\n", ch.ChannelName, ch.VideoCount)
	}
	return nil
}
