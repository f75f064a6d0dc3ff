package fetch

import (
	"github.com/digestbot/steamdigest/internal/clients/steam"
	"github.com/digestbot/steamdigest/internal/models"
	"github.com/rs/zerolog"
)

// Config holds configuration for the fetch service
type Config struct {
	// SteamClient is the Steam Web API client
	SteamClient steam.Client

	// FetchAchievements enables achievement lookups for recently played
	// games. Disabled it saves one API call per active game.
	FetchAchievements bool

	// Logger for degraded-fetch warnings
	Logger zerolog.Logger
}

// FetchSnapshotInput contains the users to snapshot
type FetchSnapshotInput struct {
	// Users maps username to steam ID
	Users map[string]string
}

// FetchSnapshotOutput contains the assembled snapshot
type FetchSnapshotOutput struct {
	Snapshot models.Snapshot
}
