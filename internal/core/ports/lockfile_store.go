package ports

import "go.trai.ch/relock/internal/core/domain"

// LockfileStore persists generated lockfile documents and merges them with
// previously committed ones.
//
//go:generate mockgen -source=lockfile_store.go -destination=mocks/mock_lockfile_store.go -package=mocks
type LockfileStore interface {
	// Load reads the prior lockfile document in dir, returning (nil, nil) when
	// none exists. An unreadable prior document is reported as absent so a
	// fresh document can replace it.
	Load(dir string) (domain.RawDocument, error)

	// Merge folds fields of the prior document that the generator does not
	// compute into next, preserving them through the rewrite.
	Merge(prior domain.RawDocument, next *domain.Lockfile) (*domain.Lockfile, error)

	// Save writes the document into dir. It reports false when the on-disk
	// file already matches and nothing was written.
	Save(dir string, doc *domain.Lockfile) (bool, error)
}
