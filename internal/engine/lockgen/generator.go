package lockgen

import (
	"path/filepath"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Generate reconstructs the lockfile document for the package at dir. It
// returns (nil, nil) when the directory has no manifest, which callers treat
// as a silent skip. Either a fully cleaned and classified document comes
// back or an error; there is no partial result.
func (g *Generator) Generate(dir string, includeDev bool) (*domain.Lockfile, error) {
	startDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve package directory"), "dir", dir)
	}

	man, err := g.manifests.ReadIfExists(startDir)
	if err != nil {
		return nil, err
	}
	if man == nil {
		return nil, nil
	}

	ctx := NewBuildContext(startDir)
	pkgRoot, err := g.build(ctx, startDir, includeDev)
	if err != nil {
		return nil, err
	}
	pkgRoot.SetOwner(ctx.Root)

	// The package's own nested dependencies become the top level. Entries
	// the builder already hoisted there take precedence on name collision.
	for name, e := range pkgRoot.Dependencies {
		if _, exists := ctx.Root.Dependencies[name]; !exists {
			ctx.Root.Dependencies[name] = e
			e.SetOwner(ctx.Root)
		}
	}
	pkgRoot.Dependencies = nil

	// Drop maps that ended up empty so they serialize as absent.
	domain.WalkEntries(ctx.Root.Dependencies, func(_ string, e *domain.Entry) {
		if len(e.Requires) == 0 {
			e.Requires = nil
		}
		if len(e.Dependencies) == 0 {
			e.Dependencies = nil
		}
	})

	if err := classify(pkgRoot, ctx.Root.Dependencies, man); err != nil {
		return nil, err
	}

	lf := &domain.Lockfile{
		Name:            man.Name,
		Version:         man.Version,
		LockfileVersion: domain.LockfileFormatVersion,
		Requires:        true,
	}
	if len(ctx.Root.Dependencies) > 0 {
		lf.Dependencies = ctx.Root.Dependencies
	}
	return lf, nil
}
