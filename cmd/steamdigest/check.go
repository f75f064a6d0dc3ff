package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/digestbot/steamdigest/internal/clients/steam"
	"github.com/digestbot/steamdigest/internal/config"
	"github.com/digestbot/steamdigest/internal/handlers/discord"
	snapshotRepo "github.com/digestbot/steamdigest/internal/repositories/snapshot"
)

var checkPostMessage bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and probe storage, Steam and the webhook",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkPostMessage, "post", false, "post a test message through the webhook")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("configuration check failed")
		return err
	}
	logger.Info().
		Int("users", len(cfg.Users)).
		Str("backend", cfg.SnapshotBackend).
		Msg("configuration OK")

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("component check failed")
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	loadOut, err := a.repo.Load(ctx, &snapshotRepo.LoadInput{
		Key: cfg.SnapshotKey,
	})
	if err != nil {
		logger.Error().Err(err).Msg("snapshot storage check failed")
		return err
	}
	logger.Info().
		Int("snapshot_users", len(loadOut.Snapshot)).
		Msg("snapshot storage OK")

	// Probe the Steam API with one user, the others share the same key
	usernames := make([]string, 0, len(cfg.Users))
	for username := range cfg.Users {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	probe := usernames[0]
	ownedOut, err := a.steamClient.GetOwnedGames(ctx, &steam.GetOwnedGamesInput{
		SteamID: cfg.Users[probe],
	})
	if err != nil {
		logger.Error().Err(err).Str("username", probe).Msg("steam API check failed")
		return err
	}
	logger.Info().
		Str("username", probe).
		Int("games", len(ownedOut.Games)).
		Msg("steam API OK")

	if a.webhook == nil {
		logger.Warn().Msg("no webhook configured, skipping webhook check")
		return nil
	}

	if !checkPostMessage {
		logger.Info().Msg("webhook URL parsed OK, use --post to send a test message")
		return nil
	}

	if err := a.webhook.Post(ctx, &discord.PostInput{
		Content: fmt.Sprintf("🔧 steamdigest check: tracking %d users", len(cfg.Users)),
	}); err != nil {
		logger.Error().Err(err).Msg("webhook check failed")
		return err
	}
	logger.Info().Msg("webhook OK")

	return nil
}
