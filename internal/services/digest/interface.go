package digest

import "context"

// Service defines the interface for the snapshot-comparison engine
type Service interface {
	// Diff computes per-user activity between two snapshots
	Diff(ctx context.Context, input *DiffInput) (*DiffOutput, error)

	// Aggregate reduces a daily diff into group-wide statistics
	Aggregate(ctx context.Context, input *AggregateInput) (*AggregateOutput, error)

	// BuildReport composes Diff and Aggregate into the report consumed by
	// the summarizer
	BuildReport(ctx context.Context, input *BuildReportInput) (*BuildReportOutput, error)
}
