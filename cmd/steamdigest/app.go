package main

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/digestbot/steamdigest/internal/clients/steam"
	"github.com/digestbot/steamdigest/internal/common/clock"
	"github.com/digestbot/steamdigest/internal/common/uuid"
	"github.com/digestbot/steamdigest/internal/config"
	"github.com/digestbot/steamdigest/internal/handlers/discord"
	snapshotRepo "github.com/digestbot/steamdigest/internal/repositories/snapshot"
	"github.com/digestbot/steamdigest/internal/services/digest"
	"github.com/digestbot/steamdigest/internal/services/fetch"
	"github.com/digestbot/steamdigest/internal/services/summary"
)

// app holds the assembled component graph for a single invocation
type app struct {
	cfg *config.Config

	repo snapshotRepo.Repository
	steamClient  steam.Client
	fetchSvc     fetch.Service
	digestSvc    digest.Service
	summarySvc   summary.Service

	// webhook is nil when no webhook URL is configured
	webhook *discord.Webhook

	uuids uuid.Generator

	redisClient *redis.Client
}

// newApp builds every component from configuration. Construction fails
// fast so a misconfigured cron run never gets as far as fetching.
func newApp(cfg *config.Config, logger zerolog.Logger) (*app, error) {
	a := &app{
		cfg:   cfg,
		uuids: uuid.New(),
	}

	switch cfg.SnapshotBackend {
	case config.BackendRedis:
		a.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})

		repo, err := snapshotRepo.NewRedis(&snapshotRepo.RedisConfig{
			RedisClient: a.redisClient,
			Logger:      logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis snapshot repository: %w", err)
		}
		a.repo = repo

	case config.BackendFile:
		repo, err := snapshotRepo.NewFile(&snapshotRepo.FileConfig{
			Dir:    cfg.SnapshotDir,
			Logger: logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create file snapshot repository: %w", err)
		}
		a.repo = repo

	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}

	steamClient, err := steam.New(&steam.Config{
		APIKey: cfg.SteamAPIKey,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create steam client: %w", err)
	}
	a.steamClient = steamClient

	fetchSvc, err := fetch.New(&fetch.Config{
		SteamClient:       steamClient,
		FetchAchievements: cfg.FetchAchievements,
		Logger:            logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch service: %w", err)
	}
	a.fetchSvc = fetchSvc

	digestSvc, err := digest.New(&digest.Config{
		Clock:  clock.New(),
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create digest service: %w", err)
	}
	a.digestSvc = digestSvc

	var completer summary.ChatCompleter
	var images summary.ImageGenerator
	if cfg.LLMAPIKey != "" {
		openAIClient, err := summary.NewOpenAICompleter(&summary.OpenAIConfig{
			APIKey:     cfg.LLMAPIKey,
			BaseURL:    cfg.LLMBaseURL,
			Model:      cfg.LLMModel,
			ImageModel: cfg.ImageModel,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create completer: %w", err)
		}
		completer = openAIClient
		if cfg.GenerateImage {
			images = openAIClient
		}
	} else {
		logger.Info().Msg("no LLM API key configured, using fallback summaries")
	}

	summarySvc, err := summary.New(&summary.Config{
		Completer: completer,
		Images:    images,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create summary service: %w", err)
	}
	a.summarySvc = summarySvc

	if cfg.DiscordWebhookURL != "" {
		webhook, err := discord.New(&discord.Config{
			WebhookURL: cfg.DiscordWebhookURL,
			Logger:     logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create discord webhook: %w", err)
		}
		a.webhook = webhook
	}

	return a, nil
}

// Close releases any connections held by the app
func (a *app) Close() {
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
}
