package summary

import "context"

// Service defines the interface for turning a report into a digest message
type Service interface {
	// Summarize produces a Discord-friendly summary of an activity report
	Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error)

	// Illustrate renders an image to post alongside the summary
	Illustrate(ctx context.Context, input *IllustrateInput) (*IllustrateOutput, error)
}

//go:generate mockgen -package=mocks -destination=mocks/mock_completer.go github.com/digestbot/steamdigest/internal/services/summary ChatCompleter

// ChatCompleter abstracts the LLM chat endpoint so the service can degrade
// to the fallback summary when no completer is configured or the call fails
type ChatCompleter interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

//go:generate mockgen -package=mocks -destination=mocks/mock_image.go github.com/digestbot/steamdigest/internal/services/summary ImageGenerator

// ImageGenerator abstracts the image endpoint. Illustration is best
// effort, so failures degrade to a text-only digest.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}
