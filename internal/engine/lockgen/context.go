// Package lockgen implements lockfile reconstruction from an installed
// package tree.
package lockgen

import "go.trai.ch/relock/internal/core/domain"

// BuildContext carries the state of one generation run over one package
// directory. A context is owned exclusively by its run; runs over different
// directories never share one, which is what allows the driver to process
// directories in parallel.
type BuildContext struct {
	// StartDir is the package directory the run was started for.
	StartDir string

	// ModulesDir is the directory name install containers use.
	ModulesDir string

	// Root is the synthetic container whose Dependencies map is the top level
	// of the reconstructed tree.
	Root *domain.Entry

	// Visited holds every installed directory already turned into an entry.
	// It only grows; it is both the dedup and the cycle guard.
	Visited map[string]bool

	// ModuleDirs maps installed directories to their entries, for hoist-target
	// decisions.
	ModuleDirs map[string]*domain.Entry

	// Resolves caches the logical requires edges recorded during
	// construction, keyed by requiring entry. Edges to already-visited
	// directories are not recorded.
	Resolves map[*domain.Entry]map[string]*domain.Entry
}

// NewBuildContext creates the context for one run over startDir.
func NewBuildContext(startDir string) *BuildContext {
	return &BuildContext{
		StartDir:   startDir,
		ModulesDir: domain.ModulesDirName,
		Root:       domain.NewTreeRoot(),
		Visited:    make(map[string]bool),
		ModuleDirs: make(map[string]*domain.Entry),
		Resolves:   make(map[*domain.Entry]map[string]*domain.Entry),
	}
}
