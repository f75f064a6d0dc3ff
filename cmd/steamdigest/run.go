package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digestbot/steamdigest/internal/config"
	"github.com/digestbot/steamdigest/internal/handlers/discord"
	snapshotRepo "github.com/digestbot/steamdigest/internal/repositories/snapshot"
	"github.com/digestbot/steamdigest/internal/services/digest"
	"github.com/digestbot/steamdigest/internal/services/fetch"
	"github.com/digestbot/steamdigest/internal/services/summary"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch today's activity, post the digest and rotate the snapshot",
	RunE:  runDigest,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDigest(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	if cfg.DiscordWebhookURL == "" {
		err := errors.New("DISCORD_WEBHOOK_URL is required for run")
		logger.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build components")
		return err
	}
	defer a.Close()

	logger = logger.With().Str("run_id", a.uuids.NewUUID()).Logger()
	ctx := cmd.Context()

	loadOut, err := a.repo.Load(ctx, &snapshotRepo.LoadInput{
		Key: cfg.SnapshotKey,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to load previous snapshot")
		return err
	}

	logger.Info().
		Int("users", len(cfg.Users)).
		Int("previous_users", len(loadOut.Snapshot)).
		Msg("fetching current activity")

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

	if summaryOut.Fallback {
		logger.Info().Msg("posting fallback summary")
	}

	illustrateOut, err := a.summarySvc.Illustrate(ctx, &summary.IllustrateInput{
		Report:  reportOut.Report,
		Summary: summaryOut.Summary,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to illustrate report")
		return err
	}

	if err := a.webhook.Post(ctx, &discord.PostInput{
		Content: summaryOut.Summary,
		Image:   illustrateOut.Image,
	}); err != nil {
		logger.Error().Err(err).Msg("failed to post digest")
		return err
	}

	// The snapshot rotates only after the digest is delivered. A crash
	// before this point leaves the old snapshot in place and the next
	// run re-reports the same window instead of losing it.
	if err := a.repo.Save(ctx, &snapshotRepo.SaveInput{
		Key:      cfg.SnapshotKey,
		Snapshot: fetchOut.Snapshot,
	}); err != nil {
		logger.Error().Err(err).Msg("failed to save snapshot after delivery")
		return fmt.Errorf("digest delivered but snapshot rotation failed: %w", err)
	}

	logger.Info().
		Bool("has_activity", reportOut.Report.HasActivity).
		Msg("digest posted and snapshot rotated")

	return nil
}
