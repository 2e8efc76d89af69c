package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game"
)

// FileStore saves and loads games as JSON files under a single directory
type FileStore struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates the save directory if needed and returns a store
func NewFileStore(dir string, logger zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating save directory %s: %w", dir, err)
	}
	return &FileStore{
		dir:    dir,
		logger: logger.With().Str("component", "FileStore").Logger(),
	}, nil
}

// Path returns the file path a save name maps to
func (fs *FileStore) Path(name string) string {
	return filepath.Join(fs.dir, name+".json")
}

// Save writes the game state under the given save name
func (fs *FileStore) Save(name string, gs *game.GameState) error {
	snap := Capture(gs)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save %q: %w", name, err)
	}

	path := fs.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing save %q: %w", name, err)
	}

	fs.logger.Info().
		Str("path", path).
		Int("turn", gs.Turn).
		Msg("Game saved")
	return nil
}

// Load reads a save by name and rebuilds the game state. Malformed saves
// fail the load outright.
func (fs *FileStore) Load(name string) (*game.GameState, error) {
	path := fs.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading save %q: %w", name, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding save %q: %w", name, err)
	}

	gs, err := Restore(&snap)
	if err != nil {
		return nil, fmt.Errorf("restoring save %q: %w", name, err)
	}

	fs.logger.Info().
		Str("path", path).
		Int("turn", gs.Turn).
		Msg("Game loaded")
	return gs, nil
}
