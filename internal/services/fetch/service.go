package fetch

import (
	"context"
	"errors"

	"github.com/digestbot/steamdigest/internal/clients/steam"
	"github.com/digestbot/steamdigest/internal/models"
	"github.com/rs/zerolog"
)

// Define errors
var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilSteamClient = errors.New("steam client cannot be nil")
	ErrNilInput       = errors.New("input cannot be nil")
	ErrAllUsersFailed = errors.New("failed to fetch activity for every configured user")
)

// service implements the Service interface
type service struct {
	steamClient       steam.Client
	fetchAchievements bool
	logger            zerolog.Logger
}

// New creates a new fetch service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SteamClient == nil {
		return nil, ErrNilSteamClient
	}

	return &service{
		steamClient:       cfg.SteamClient,
		fetchAchievements: cfg.FetchAchievements,
		logger:            cfg.Logger,
	}, nil
}

// FetchSnapshot builds a snapshot for every configured user. A user whose
// fetch fails is degraded to an empty library rather than failing the run,
// so one flaky profile does not lose everyone's digest. Only when every
// user fails is the run considered a fetch failure.
func (s *service) FetchSnapshot(ctx context.Context, input *FetchSnapshotInput) (*FetchSnapshotOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	snap := make(models.Snapshot, len(input.Users))
	failures := 0

	for username, steamID := range input.Users {
		record, err := s.fetchUser(ctx, username, steamID)
		if err != nil {
			s.logger.Warn().Err(err).Str("user", username).
				Msg("Failed to fetch activity, recording an empty library")
			record = models.NewUserRecord(steamID)
			failures++
		}
		snap[username] = record
	}

	if len(input.Users) > 0 && failures == len(input.Users) {
		return nil, ErrAllUsersFailed
	}

	return &FetchSnapshotOutput{Snapshot: snap}, nil
}

func (s *service) fetchUser(ctx context.Context, username, steamID string) (*models.UserRecord, error) {
	owned, err := s.steamClient.GetOwnedGames(ctx, &steam.GetOwnedGamesInput{
		SteamID: steamID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user", username).Int("games", len(owned.Games)).
		Msg("Fetched owned games")

	// Recent activity is supplementary: without it the snapshot still
	// works, it just loses the first-run fallback signal.
	recentByApp := make(map[string]int)
	recent, err := s.steamClient.GetRecentlyPlayedGames(ctx, &steam.GetRecentlyPlayedGamesInput{
		SteamID: steamID,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("user", username).
			Msg("Failed to fetch recent games, continuing without recent activity")
	} else {
		for _, g := range recent.Games {
			recentByApp[g.AppID] = g.Playtime2Weeks
		}
	}

	record := models.NewUserRecord(steamID)
	for _, game := range owned.Games {
		gameRecord := models.NewGameRecord(game.AppID, game.PlaytimeForever)

		if minutes, ok := recentByApp[game.AppID]; ok {
			gameRecord.Playtime2Weeks = minutes

			// Achievements are only polled for recently played games to
			// keep the API call count bounded by activity, not library size.
			if s.fetchAchievements {
				gameRecord.Achievements = s.fetchAchievementsFor(ctx, username, steamID, game.AppID)
			}
		}

		record.Games[game.Name] = gameRecord
	}

	return record, nil
}

func (s *service) fetchAchievementsFor(ctx context.Context, username, steamID, appID string) []string {
	out, err := s.steamClient.GetPlayerAchievements(ctx, &steam.GetPlayerAchievementsInput{
		SteamID: steamID,
		AppID:   appID,
	})
	if err != nil {
		s.logger.Debug().Err(err).Str("user", username).Str("app_id", appID).
			Msg("Failed to fetch achievements, continuing without them")
		return nil
	}

	return out.Unlocked
}
