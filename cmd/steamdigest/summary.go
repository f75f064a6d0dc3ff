package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digestbot/steamdigest/internal/config"
	snapshotRepo "github.com/digestbot/steamdigest/internal/repositories/snapshot"
	"github.com/digestbot/steamdigest/internal/services/digest"
	"github.com/digestbot/steamdigest/internal/services/fetch"
	"github.com/digestbot/steamdigest/internal/services/summary"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print today's digest without posting or rotating the snapshot",
	Long: `summary builds the same report as run and prints it to stdout. The
stored snapshot is left untouched, so a later run still covers the full
window.`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build components")
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	loadOut, err := a.repo.Load(ctx, &snapshotRepo.LoadInput{
		Key: cfg.SnapshotKey,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to load previous snapshot")
		return err
	}

	fetchOut, err := a.fetchSvc.FetchSnapshot(ctx, &fetch.FetchSnapshotInput{
		Users: cfg.Users,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch snapshot")
		return err
	}

	reportOut, err := a.digestSvc.BuildReport(ctx, &digest.BuildReportInput{
		Old: loadOut.Snapshot,
		New: fetchOut.Snapshot,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to build report")
		return err
	}

	summaryOut, err := a.summarySvc.Summarize(ctx, &summary.SummarizeInput{
		Report: reportOut.Report,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to summarize report")
		return err
	}

	fmt.Println(summaryOut.Summary)

	return nil
}
