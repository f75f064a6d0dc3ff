package snapshot

import "github.com/digestbot/steamdigest/internal/models"

// LoadInput contains parameters for loading a snapshot
type LoadInput struct {
	Key string
}

// LoadOutput contains the result of loading a snapshot
type LoadOutput struct {
	// Snapshot is never nil; missing or corrupt data yields an empty map
	Snapshot models.Snapshot
}

// SaveInput contains parameters for saving a snapshot
type SaveInput struct {
	Key      string
	Snapshot models.Snapshot
}
