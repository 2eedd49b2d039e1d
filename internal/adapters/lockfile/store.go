// Package lockfile implements lockfile document persistence and structural
// merging with previously committed documents.
package lockfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the lockfile name written next to every package manifest.
const Filename = "package-lock.json"

var _ ports.LockfileStore = (*Store)(nil)

// Store implements ports.LockfileStore over JSON files on disk.
type Store struct {
	log ports.Logger
}

// NewStore creates a new Store.
func NewStore(log ports.Logger) *Store {
	return &Store{log: log}
}

// Load reads the prior lockfile in dir. A missing file returns (nil, nil). A
// file that exists but cannot be decoded is logged and treated as absent, so
// generation replaces it with a fresh document instead of failing.
func (s *Store) Load(dir string) (domain.RawDocument, error) {
	path := filepath.Join(dir, Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the scanned tree
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read prior lockfile"), "path", path)
	}

	var doc domain.RawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn("prior lockfile is not valid JSON, regenerating from scratch: " + path)
		return nil, nil
	}
	return doc, nil
}

// Save writes the document into dir, indented with two spaces and terminated
// by a newline. When the on-disk content already matches it writes nothing
// and reports false, keeping repeated runs from touching mtimes.
func (s *Store) Save(dir string, doc *domain.Lockfile) (bool, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return false, zerr.Wrap(err, "failed to marshal lockfile")
	}
	data = append(data, '\n')

	path := filepath.Join(dir, Filename)
	if existing, err := os.ReadFile(path); err == nil { //nolint:gosec // same path as above
		if xxhash.Sum64(existing) == xxhash.Sum64(data) {
			return false, nil
		}
	}

	//nolint:gosec // lockfiles are world-readable by convention
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write lockfile"), "path", path)
	}
	return true, nil
}
