package lockgen

import (
	"errors"
	"path/filepath"
	"sort"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Generator reconstructs lockfile documents by inspecting installed package
// trees. It never installs anything; it mirrors what the installer already
// put on disk.
type Generator struct {
	manifests ports.ManifestReader
	locator   ports.ModuleLocator
	log       ports.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(manifests ports.ManifestReader, locator ports.ModuleLocator, log ports.Logger) *Generator {
	return &Generator{
		manifests: manifests,
		locator:   locator,
		log:       log,
	}
}

// build turns the installed directory at dir into an entry, recursing into
// its resolvable requirements. Development requirements are only considered
// at the true root of a run.
func (g *Generator) build(ctx *BuildContext, dir string, includeDev bool) (*domain.Entry, error) {
	man, err := g.manifests.Read(dir)
	if err != nil {
		return nil, err
	}

	requires, err := g.collectRequires(dir, man, includeDev)
	if err != nil {
		return nil, err
	}

	e := &domain.Entry{
		Version:      man.Version,
		Integrity:    man.Integrity,
		Resolved:     man.Resolved,
		Requires:     requires,
		Dependencies: domain.EntryDeps{},
	}
	ctx.Visited[dir] = true
	ctx.ModuleDirs[dir] = e
	ctx.Resolves[e] = make(map[string]*domain.Entry)

	names := make([]string, 0, len(requires))
	for name := range requires {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		depDir, err := g.locator.Locate(dir, name)
		if err != nil {
			// requires was already filtered to locatable names; a miss now
			// means the tree changed underneath us.
			lerr := zerr.Wrap(err, "installed dependency disappeared during build")
			return nil, zerr.With(lerr, "requiring_dir", dir)
		}

		if ctx.Visited[depDir] {
			// The entry lives elsewhere in the tree. No logical edge is
			// recorded for it either; see the resolves cache notes.
			continue
		}

		target, owner := g.hoistTarget(ctx, depDir)
		child, err := g.build(ctx, depDir, false)
		if err != nil {
			return nil, err
		}
		target[name] = child
		child.SetOwner(owner)
		ctx.Resolves[e][name] = child
	}

	return e, nil
}

// collectRequires merges the manifest's dependency categories with a fixed
// precedence: dependencies, then optional (overwriting on collision), then
// development when included (overwriting again). Names without a locatable
// installation are dropped; that is the normal path for absent optionals.
func (g *Generator) collectRequires(dir string, man *domain.Manifest, includeDev bool) (map[string]string, error) {
	merged := make(map[string]string)
	categories := []map[string]string{man.Dependencies, man.OptionalDependencies}
	if includeDev {
		categories = append(categories, man.DevDependencies)
	}
	for _, cat := range categories {
		for name, rng := range cat {
			merged[name] = rng
		}
	}

	for name := range merged {
		if _, err := g.locator.Locate(dir, name); err != nil {
			if errors.Is(err, domain.ErrModuleNotFound) {
				delete(merged, name)
				continue
			}
			return nil, err
		}
	}
	return merged, nil
}

// hoistTarget decides which dependencies map the entry for depDir belongs
// in. The physical nesting already encodes the installer's hoisting
// decision, so placement is discovered from directory ancestry rather than
// recomputed: the nearest install-container ancestor's parent names the
// owning entry, and anything without a registered owner lands at the top
// level.
func (g *Generator) hoistTarget(ctx *BuildContext, depDir string) (domain.EntryDeps, *domain.Entry) {
	container := g.nearestContainer(depDir, ctx.ModulesDir)
	if container == "" {
		return ctx.Root.Dependencies, ctx.Root
	}

	parent := filepath.Dir(container)
	if pe, ok := ctx.ModuleDirs[parent]; ok {
		if pe.Dependencies == nil {
			pe.Dependencies = domain.EntryDeps{}
		}
		return pe.Dependencies, pe
	}
	return ctx.Root.Dependencies, ctx.Root
}

// nearestContainer returns the closest ancestor of dir that is an install
// container, or "" when there is none. Scoped installs sit one extra level
// below their container.
func (g *Generator) nearestContainer(dir, modulesDir string) string {
	for d := filepath.Dir(dir); ; d = filepath.Dir(d) {
		if filepath.Base(d) == modulesDir {
			return d
		}
		if filepath.Dir(d) == d {
			return ""
		}
	}
}
