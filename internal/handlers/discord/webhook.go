package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

const (
	botUsername  = "Steam Digest Bot"
	botAvatarURL = "https://cdn.cloudflare.steamstatic.com/steamcommunity/public/images/avatars/fe/fef49e7fa7e1997310d705b2a6158ff8dc1cdfeb_full.jpg"

	// Discord hard-caps message content
	maxMessageLength = 2000
)

// Define errors
var (
	ErrEmptyMessage      = errors.New("message cannot be empty")
	ErrInvalidWebhookURL = errors.New("webhook URL is not a valid Discord webhook")
)

// Config holds configuration for the webhook poster
type Config struct {
	// WebhookURL is the full Discord webhook URL
	WebhookURL string

	// Logger for delivery diagnostics
	Logger zerolog.Logger
}

// Webhook posts digest messages to a Discord webhook
type Webhook struct {
	session *discordgo.Session
	id      string
	token   string
	logger  zerolog.Logger
}

// New creates a new webhook poster
func New(cfg *Config) (*Webhook, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	id, token, err := parseWebhookURL(cfg.WebhookURL)
	if err != nil {
		return nil, err
	}

	// Webhook execution is authenticated by the webhook token itself, so
	// the session carries no bot token.
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &Webhook{
		session: session,
		id:      id,
		token:   token,
		logger:  cfg.Logger,
	}, nil
}

// PostInput contains the message to deliver
type PostInput struct {
	Content string

	// Image is an optional PNG attached alongside the message
	Image []byte
}

// Post delivers a message through the webhook
func (w *Webhook) Post(ctx context.Context, input *PostInput) error {
	if input == nil || input.Content == "" {
		return ErrEmptyMessage
	}

	params, truncated := buildParams(input)
	if truncated {
		w.logger.Warn().Int("length", len([]rune(input.Content))).
			Msg("Message exceeds Discord limit, truncating")
	}

	_, err := w.session.WebhookExecute(w.id, w.token, true, params,
		discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to post to Discord: %w", err)
	}

	w.logger.Info().Bool("image", len(input.Image) > 0).Msg("Posted digest to Discord")
	return nil
}

// buildParams assembles the webhook payload. The Discord cap counts
// characters, not bytes, so truncation never splits a multi-byte rune.
func buildParams(input *PostInput) (*discordgo.WebhookParams, bool) {
	content := input.Content
	truncated := false
	if runes := []rune(content); len(runes) > maxMessageLength {
		content = string(runes[:maxMessageLength])
		truncated = true
	}

	params := &discordgo.WebhookParams{
		Content:   content,
		Username:  botUsername,
		AvatarURL: botAvatarURL,
	}

	if len(input.Image) > 0 {
		params.Files = []*discordgo.File{{
			Name:        "digest.png",
			ContentType: "image/png",
			Reader:      bytes.NewReader(input.Image),
		}}
	}

	return params, truncated
}

// parseWebhookURL extracts the webhook ID and token from a URL of the form
// https://discord.com/api/webhooks/<id>/<token>
func parseWebhookURL(raw string) (id, token string, err error) {
	if raw == "" {
		return "", "", ErrInvalidWebhookURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidWebhookURL, err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	// Expect .../api/webhooks/<id>/<token>
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" {
			id, token = parts[i+1], parts[i+2]
			break
		}
	}

	if id == "" || token == "" {
		return "", "", ErrInvalidWebhookURL
	}

	return id, token, nil
}
