package snapshot

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/digestbot/steamdigest/internal/repositories/snapshot Repository

// Repository defines the interface for snapshot persistence.
//
// Load fails soft: a missing or unreadable snapshot yields an empty one,
// since that is the normal first-run state. Save failures are real errors,
// the run is not complete until the new baseline is durable.
type Repository interface {
	// Load retrieves the snapshot stored under a key
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Save persists a snapshot under a key
	Save(ctx context.Context, input *SaveInput) error
}
