package summary

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/digestbot/steamdigest/internal/models"
	"github.com/rs/zerolog"
)

const systemPrompt = `You are a top gaming streamer that summarizes daily gaming activity for a group of friends.
Your summaries should be:
- Discord-friendly (under 2000 characters)
- Casual and fun in tone
- Tailored to the specific games being played
- Include gaming emojis where appropriate
- Highlight interesting patterns or achievements
- Mention and celebrate collaborative gaming when it happens
- Keep it concise but engaging

Focus on the most interesting aspects of the day's gaming session.`

// quietDayMessage is posted when nobody played anything
const quietDayMessage = "🎮 No gaming activity detected today. Everyone must be taking a break! 🛋️"

// Define errors
var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilInput  = errors.New("input cannot be nil")
	ErrNilReport = errors.New("report cannot be nil")
)

// service implements the Service interface
type service struct {
	completer ChatCompleter
	images    ImageGenerator
	logger    zerolog.Logger
}

// New creates a new summary service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return &service{
		completer: cfg.Completer,
		images:    cfg.Images,
		logger:    cfg.Logger,
	}, nil
}

// Summarize produces a Discord-friendly summary. A quiet day needs no API
// call; a missing or failing completer degrades to the deterministic
// fallback digest rather than failing the run.
func (s *service) Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Report == nil {
		return nil, ErrNilReport
	}

	report := input.Report
	if !report.HasActivity {
		return &SummarizeOutput{Summary: quietDayMessage}, nil
	}

	if s.completer == nil {
		return &SummarizeOutput{Summary: buildFallbackSummary(report), Fallback: true}, nil
	}

	prompt, err := formatReportPrompt(report)
	if err != nil {
		return nil, fmt.Errorf("failed to format report: %w", err)
	}

	text, err := s.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Summary generation failed, using fallback summary")
		return &SummarizeOutput{Summary: buildFallbackSummary(report), Fallback: true}, nil
	}

	return &SummarizeOutput{Summary: text}, nil
}

// Illustrate renders an image for the digest. It is best effort: a quiet
// day, a missing generator or a failed call all yield a nil image so the
// digest still goes out as text.
func (s *service) Illustrate(ctx context.Context, input *IllustrateInput) (*IllustrateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Report == nil {
		return nil, ErrNilReport
	}

	if s.images == nil || !input.Report.HasActivity {
		return &IllustrateOutput{}, nil
	}

	image, err := s.images.GenerateImage(ctx, buildImagePrompt(input.Summary, input.Report))
	if err != nil {
		s.logger.Warn().Err(err).Msg("Image generation failed, posting text only")
		return &IllustrateOutput{}, nil
	}

	return &IllustrateOutput{Image: image}, nil
}

// promptData is the report slice handed to the model: active users only,
// plus the group highlights worth celebrating.
type promptData struct {
	IndividualActivity map[string]promptUser `json:"individual_activity"`
	GroupHighlights    *models.GroupStats    `json:"group_highlights"`
}

type promptUser struct {
	TotalMinutes    int            `json:"total_minutes"`
	GamesPlayed     map[string]int `json:"games_played"`
	NewGames        []string       `json:"new_games"`
	FirstTimePlayed []string       `json:"first_time_played"`
}

func formatReportPrompt(report *models.Report) (string, error) {
	data := promptData{
		IndividualActivity: make(map[string]promptUser),
		GroupHighlights:    report.GroupStats,
	}

	for _, username := range report.IndividualStats.Users {
		userDiff := report.IndividualStats.Stats[username]
		if userDiff.TotalMinutes <= 0 {
			continue
		}
		data.IndividualActivity[username] = promptUser{
			TotalMinutes:    userDiff.TotalMinutes,
			GamesPlayed:     userDiff.Played,
			NewGames:        userDiff.NewGames,
			FirstTimePlayed: userDiff.FirstTimePlayed,
		}
	}

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}

	return "Here is today's gaming activity data. Please create a fun Discord-friendly summary:\n\n" + string(payload), nil
}
