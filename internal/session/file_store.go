// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists the single session credential string to disk, the
// counterpart of the browser build's localStorage entry. The file holds
// exactly one line and is created owner-readable only.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to path. The parent directory is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted credential. A missing file is not an error and
// yields an empty string.
func (s *FileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session credential: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save writes the credential, replacing any previous value.
func (s *FileStore) Save(secret string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(secret+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session credential: %w", err)
	}
	return nil
}

// Clear removes the persisted credential. A missing file is fine.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session credential: %w", err)
	}
	return nil
}