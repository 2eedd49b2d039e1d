// Package ports defines the narrow contracts between the reconstruction core
// and its external collaborators.
package ports

import "go.trai.ch/relock/internal/core/domain"

// ManifestReader reads package manifests from installed directories.
//
//go:generate mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest at dir. It fails when the file is missing or
	// malformed.
	Read(dir string) (*domain.Manifest, error)

	// ReadIfExists parses the manifest at dir, returning (nil, nil) when no
	// manifest file exists. A malformed file still fails.
	ReadIfExists(dir string) (*domain.Manifest, error)
}
