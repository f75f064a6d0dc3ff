package digest

import (
	"github.com/digestbot/steamdigest/internal/common/clock"
	"github.com/digestbot/steamdigest/internal/models"
	"github.com/rs/zerolog"
)

// Config holds configuration for the digest service
type Config struct {
	// Clock stamps reports, injectable for tests
	Clock clock.Clock

	// Logger for anomaly diagnostics
	Logger zerolog.Logger
}

// DiffInput contains the two snapshots to compare
type DiffInput struct {
	// Old is the previous snapshot, empty on a first run
	Old models.Snapshot

	// New is the snapshot fetched this run
	New models.Snapshot
}

// DiffOutput contains the per-user activity diff
type DiffOutput struct {
	Diff *models.DailyDiff
}

// AggregateInput contains the diff to reduce
type AggregateInput struct {
	Diff *models.DailyDiff
}

// AggregateOutput contains the group-wide statistics
type AggregateOutput struct {
	Stats *models.GroupStats
}

// BuildReportInput contains the two snapshots to report on
type BuildReportInput struct {
	Old models.Snapshot
	New models.Snapshot
}

// BuildReportOutput contains the complete activity report
type BuildReportOutput struct {
	Report *models.Report
}
