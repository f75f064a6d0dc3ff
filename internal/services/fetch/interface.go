package fetch

import "context"

// Service defines the interface for assembling activity snapshots
type Service interface {
	// FetchSnapshot builds a snapshot for the configured users from the
	// Steam Web API
	FetchSnapshot(ctx context.Context, input *FetchSnapshotInput) (*FetchSnapshotOutput, error)
}
