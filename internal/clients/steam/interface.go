package steam

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/digestbot/steamdigest/internal/clients/steam Client

// Client defines the interface for the Steam Web API
type Client interface {
	// GetOwnedGames retrieves a user's complete game library
	GetOwnedGames(ctx context.Context, input *GetOwnedGamesInput) (*GetOwnedGamesOutput, error)

	// GetRecentlyPlayedGames retrieves games played in the last two weeks
	GetRecentlyPlayedGames(ctx context.Context, input *GetRecentlyPlayedGamesInput) (*GetRecentlyPlayedGamesOutput, error)

	// GetPlayerAchievements retrieves unlocked achievements for one game
	GetPlayerAchievements(ctx context.Context, input *GetPlayerAchievementsInput) (*GetPlayerAchievementsOutput, error)
}
