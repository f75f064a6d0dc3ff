package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/digestbot/steamdigest/internal/models"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// FileConfig holds configuration for the file snapshot repository
type FileConfig struct {
	// Dir is the directory snapshots are stored in, created on demand
	Dir string

	// Logger for degraded-load warnings
	Logger zerolog.Logger
}

// fileRepository implements the Repository interface using JSON files
type fileRepository struct {
	dir    string
	logger zerolog.Logger
}

// NewFile creates a new file-backed snapshot repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Dir == "" {
		return nil, errors.New("directory cannot be empty")
	}

	return &fileRepository{
		dir:    cfg.Dir,
		logger: cfg.Logger,
	}, nil
}

// Load reads a snapshot from disk. A missing file is the normal first-run
// state and yields an empty snapshot; so does an unreadable one, which is
// logged rather than surfaced.
func (r *fileRepository) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	path := r.path(input.Key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Info().Str("path", path).
				Msg("No previous snapshot found (this is normal for a first run)")
			return &LoadOutput{Snapshot: models.Snapshot{}}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		r.logger.Warn().Err(err).Str("path", path).
			Msg("Could not parse stored snapshot, starting from an empty baseline")
		return &LoadOutput{Snapshot: models.Snapshot{}}, nil
	}

	if snap == nil {
		snap = models.Snapshot{}
	}

	return &LoadOutput{Snapshot: snap}, nil
}

// Save writes a snapshot to disk via a temp file and rename so a failed
// write never truncates the previous baseline.
func (r *fileRepository) Save(_ context.Context, input *SaveInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	if input.Snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	data, err := json.MarshalIndent(input.Snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	path := r.path(input.Key)
	tmpPath := path + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

func (r *fileRepository) path(key string) string {
	return filepath.Join(r.dir, key+".json")
}
