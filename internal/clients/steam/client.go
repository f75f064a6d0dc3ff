package steam

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://api.steampowered.com"
	defaultTimeout = 10 * time.Second

	ownedGamesPath   = "/IPlayerService/GetOwnedGames/v1/"
	recentGamesPath  = "/IPlayerService/GetRecentlyPlayedGames/v1/"
	achievementsPath = "/ISteamUserStats/GetPlayerAchievements/v1/"
)

// Config holds configuration for the Steam API client
type Config struct {
	// APIKey is the Steam Web API key
	APIKey string

	// BaseURL overrides the API host, used by tests
	BaseURL string

	// HTTPClient overrides the HTTP client, defaults to a 10s timeout
	HTTPClient *http.Client

	// Logger for request diagnostics
	Logger zerolog.Logger
}

// client implements the Client interface against the Steam Web API
type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a new Steam API client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

// GetOwnedGames retrieves a user's complete game library
func (c *client) GetOwnedGames(ctx context.Context, input *GetOwnedGamesInput) (*GetOwnedGamesOutput, error) {
	if input == nil || input.SteamID == "" {
		return nil, errors.New("input and steam ID cannot be empty")
	}

	params := url.Values{}
	params.Set("steamid", input.SteamID)
	params.Set("include_appinfo", "true")
	params.Set("include_played_free_games", "true")

	var resp ownedGamesResponse
	if err := c.get(ctx, ownedGamesPath, params, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch owned games for %s: %w", input.SteamID, err)
	}

	out := &GetOwnedGamesOutput{
		Games: make([]OwnedGame, 0, len(resp.Response.Games)),
	}
	for _, g := range resp.Response.Games {
		appID := strconv.Itoa(g.AppID)
		name := g.Name
		if name == "" {
			name = "App " + appID
		}
		out.Games = append(out.Games, OwnedGame{
			AppID:           appID,
			Name:            name,
			PlaytimeForever: g.PlaytimeForever,
		})
	}

	return out, nil
}

// GetRecentlyPlayedGames retrieves games played in the last two weeks
func (c *client) GetRecentlyPlayedGames(ctx context.Context, input *GetRecentlyPlayedGamesInput) (*GetRecentlyPlayedGamesOutput, error) {
	if input == nil || input.SteamID == "" {
		return nil, errors.New("input and steam ID cannot be empty")
	}

	params := url.Values{}
	params.Set("steamid", input.SteamID)

	var resp recentGamesResponse
	if err := c.get(ctx, recentGamesPath, params, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch recent games for %s: %w", input.SteamID, err)
	}

	out := &GetRecentlyPlayedGamesOutput{
		Games: make([]RecentGame, 0, len(resp.Response.Games)),
	}
	for _, g := range resp.Response.Games {
		out.Games = append(out.Games, RecentGame{
			AppID:          strconv.Itoa(g.AppID),
			Playtime2Weeks: g.Playtime2Weeks,
		})
	}

	return out, nil
}

// GetPlayerAchievements retrieves unlocked achievements for one game.
// Steam answers 400 for games without achievement support or with a
// restricted achievement API, which is treated as "no achievements".
func (c *client) GetPlayerAchievements(ctx context.Context, input *GetPlayerAchievementsInput) (*GetPlayerAchievementsOutput, error) {
	if input == nil || input.SteamID == "" || input.AppID == "" {
		return nil, errors.New("input, steam ID and app ID cannot be empty")
	}

	params := url.Values{}
	params.Set("steamid", input.SteamID)
	params.Set("appid", input.AppID)

	var resp achievementsResponse
	err := c.get(ctx, achievementsPath, params, &resp)
	if err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) && statusErr.code == http.StatusBadRequest {
			c.logger.Debug().Str("app_id", input.AppID).
				Msg("Game has no achievements or a restricted achievement API")
			return &GetPlayerAchievementsOutput{Unlocked: []string{}}, nil
		}
		return nil, fmt.Errorf("failed to fetch achievements for %s, app %s: %w", input.SteamID, input.AppID, err)
	}

	out := &GetPlayerAchievementsOutput{Unlocked: []string{}}
	if !resp.PlayerStats.Success {
		return out, nil
	}

	for _, a := range resp.PlayerStats.Achievements {
		if a.Achieved != 0 {
			out.Unlocked = append(out.Unlocked, a.APIName)
		}
	}

	return out, nil
}

// statusError reports a non-2xx API response
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

func (c *client) get(ctx context.Context, path string, params url.Values, target any) error {
	params.Set("key", c.apiKey)
	params.Set("format", "json")

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
