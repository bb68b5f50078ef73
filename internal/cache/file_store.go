package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"credit-tracker/internal/models"
)

type fileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore returns a store persisted as JSON at path. Parent directories are
// created on first write. A nil logger falls back to slog.Default().
func NewFileStore(path string, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &fileStore{path: path, logger: logger}
}

// DefaultPath is the cache file location under the user's cache directory,
// falling back to the working directory.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return SlotName + ".json"
	}
	return filepath.Join(dir, "credit-tracker", SlotName+".json")
}

func (s *fileStore) Read() ([]models.Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Account{}, nil
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		s.logger.Warn("cache slot is malformed, treating as empty",
			"path", s.path,
			"error", err)
		return []models.Account{}, nil
	}

	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// Write serializes to path+".tmp" and renames over the slot so a failed write
// never leaves a partial file behind.
func (s *fileStore) Write(accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(accounts); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace cache: %w", err)
	}
	return nil
}

func (s *fileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
