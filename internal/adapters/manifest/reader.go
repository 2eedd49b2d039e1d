// Package manifest implements the manifest reader over package.json files.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the manifest file name inside every package directory.
const Filename = "package.json"

var _ ports.ManifestReader = (*Reader)(nil)

// Reader implements ports.ManifestReader by parsing package.json files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// manifestFile mirrors the manifest's JSON layout. The underscore-prefixed
// fields are metadata the installer writes into installed copies.
type manifestFile struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Dependencies         map[string]string `json:"dependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	PeerDependencies     map[string]string `json:"peerDependencies"`
	Integrity            string            `json:"_integrity"`
	Resolved             string            `json:"_resolved"`
}

// Read parses the manifest at dir.
func (r *Reader) Read(dir string) (*domain.Manifest, error) {
	path := filepath.Join(dir, Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the scanned tree
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var file manifestFile
	if err := json.Unmarshal(data, &file); err != nil {
		merr := zerr.With(domain.ErrManifestMalformed, "path", path)
		return nil, zerr.With(merr, "parse_error", err.Error())
	}

	return &domain.Manifest{
		Name:                 file.Name,
		Version:              file.Version,
		Dependencies:         file.Dependencies,
		OptionalDependencies: file.OptionalDependencies,
		DevDependencies:      file.DevDependencies,
		PeerDependencies:     file.PeerDependencies,
		Integrity:            file.Integrity,
		Resolved:             file.Resolved,
	}, nil
}

// ReadIfExists parses the manifest at dir, returning (nil, nil) when the file
// is simply missing.
func (r *Reader) ReadIfExists(dir string) (*domain.Manifest, error) {
	if _, err := os.Stat(filepath.Join(dir, Filename)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat manifest"), "dir", dir)
	}
	return r.Read(dir)
}
