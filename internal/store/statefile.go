// Package store reads and writes the finance data file and loads the
// category presets.
package store

import (
	"errors"
	"fmt"
	"os"

	"fjacquet/finance-tracker/internal/codec"
	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/logging"
)

// StateStore persists the serialized application state.
type StateStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// StateFile keeps the state in a single JSON file on disk.
type StateFile struct {
	Path   string
	logger logging.Logger
}

// NewStateFile creates a StateFile at path, or codec.DefaultFileName when
// path is empty.
func NewStateFile(path string, logger logging.Logger) *StateFile {
	if path == "" {
		path = codec.DefaultFileName
	}
	return &StateFile{Path: path, logger: logging.OrDiscard(logger)}
}

// Load returns the file contents, or nil when the file does not exist yet.
func (f *StateFile) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.logger.Debug("No data file yet, starting empty",
				logging.F(logging.FieldFile, f.Path))
			return nil, nil
		}
		return nil, fmt.Errorf("error reading data file: %w", err)
	}
	f.logger.Debug("Loaded data file",
		logging.F(logging.FieldFile, f.Path),
		logging.F("bytes", len(data)))
	return data, nil
}

// Save replaces the data file atomically.
func (f *StateFile) Save(data []byte) error {
	if err := fileutils.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("error saving data file: %w", err)
	}
	f.logger.Debug("Saved data file",
		logging.F(logging.FieldFile, f.Path),
		logging.F("bytes", len(data)))
	return nil
}
