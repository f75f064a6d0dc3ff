package summary

import (
	"github.com/digestbot/steamdigest/internal/models"
	"github.com/rs/zerolog"
)

// Config holds configuration for the summary service
type Config struct {
	// Completer is the LLM client. Nil means the deterministic fallback
	// summary is always used.
	Completer ChatCompleter

	// Images is the image client. Nil means digests are text-only.
	Images ImageGenerator

	// Logger for degraded-summary warnings
	Logger zerolog.Logger
}

// SummarizeInput contains the report to summarize
type SummarizeInput struct {
	Report *models.Report
}

// SummarizeOutput contains the generated summary
type SummarizeOutput struct {
	// Summary is the Discord-ready message text
	Summary string

	// Fallback indicates the deterministic summary was used instead of
	// the LLM
	Fallback bool
}

// IllustrateInput contains the report and the summary already generated
// for it
type IllustrateInput struct {
	Report  *models.Report
	Summary string
}

// IllustrateOutput contains the rendered image, nil when illustration was
// skipped or failed
type IllustrateOutput struct {
	Image []byte
}
