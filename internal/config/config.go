package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Snapshot storage backends
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// ErrNoUsers is returned when the USERS variable contains no valid entries
var ErrNoUsers = errors.New("no valid users configured")

// Config holds all environment-derived settings. It is parsed once at
// startup and passed explicitly to the components that need it.
type Config struct {
	// SteamAPIKey authenticates against the Steam Web API
	SteamAPIKey string `env:"STEAM_API_KEY,required"`

	// DiscordWebhookURL is the webhook the digest is posted to
	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL"`

	// LLMAPIKey authenticates against the summarizer endpoint. When empty
	// the deterministic fallback summary is used.
	LLMAPIKey string `env:"LLM_API_KEY"`

	// LLMBaseURL overrides the OpenAI-compatible endpoint base URL
	LLMBaseURL string `env:"LLM_BASE_URL"`

	// LLMModel is the chat model used for summaries
	LLMModel string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`

	// ImageModel is the model used for digest illustrations
	ImageModel string `env:"IMAGE_MODEL" envDefault:"dall-e-3"`

	// GenerateImage enables posting an illustration with the digest
	GenerateImage bool `env:"GENERATE_IMAGE" envDefault:"true"`

	// UsersRaw is the raw USERS value, "username:steamid" pairs separated
	// by commas
	UsersRaw string `env:"USERS,required"`

	// SnapshotBackend selects the snapshot store, "file" or "redis"
	SnapshotBackend string `env:"SNAPSHOT_BACKEND" envDefault:"file"`

	// SnapshotDir is the directory for the file backend
	SnapshotDir string `env:"SNAPSHOT_DIR" envDefault:"snapshots"`

	// SnapshotKey is the storage key the snapshot rotates under
	SnapshotKey string `env:"SNAPSHOT_KEY" envDefault:"snapshot"`

	// RedisAddr is the redis address for the redis backend
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the redis password for the redis backend
	RedisPassword string `env:"REDIS_PASSWORD"`

	// FetchAchievements enables per-game achievement fetching
	FetchAchievements bool `env:"FETCH_ACHIEVEMENTS" envDefault:"true"`

	// Users maps username to steam ID, parsed from UsersRaw
	Users map[string]string `env:"-"`
}

// Load reads configuration from the environment, with .env as an optional
// overlay for local runs.
func Load() (*Config, error) {
	// A missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	users, err := ParseUsers(cfg.UsersRaw)
	if err != nil {
		return nil, err
	}
	cfg.Users = users

	return &cfg, nil
}

// ParseUsers parses a "username:steamid,username:steamid" list. Entries
// without a colon are skipped.
func ParseUsers(raw string) (map[string]string, error) {
	users := make(map[string]string)

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		username, steamID, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}

		username = strings.TrimSpace(username)
		steamID = strings.TrimSpace(steamID)
		if username == "" || steamID == "" {
			continue
		}

		users[username] = steamID
	}

	if len(users) == 0 {
		return nil, ErrNoUsers
	}

	return users, nil
}
