// Package modules implements the module locator over installed package trees.
package modules

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/relock/internal/adapters/manifest"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleLocator = (*Locator)(nil)

// Locator implements ports.ModuleLocator by probing install containers from
// the requesting directory outward, the same search order the installer's
// runtime resolution uses.
type Locator struct {
	modulesDir string
}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{modulesDir: domain.ModulesDirName}
}

// Locate resolves name from fromDir. Scoped names ("@scope/name") probe two
// path segments below each container.
func (l *Locator) Locate(fromDir, name string) (string, error) {
	dir := fromDir
	for {
		candidate := filepath.Join(dir, l.modulesDir, filepath.FromSlash(name))
		installed, err := l.isInstallDir(candidate)
		if err != nil {
			return "", err
		}
		if installed {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	nferr := zerr.With(domain.ErrModuleNotFound, "package", name)
	return "", zerr.With(nferr, "from", fromDir)
}

// isInstallDir reports whether dir holds an installed package, i.e. contains
// a manifest file. Probe misses are the expected path; any other failure
// (permissions, corruption) propagates as fatal.
func (l *Locator) isInstallDir(dir string) (bool, error) {
	info, err := os.Stat(filepath.Join(dir, manifest.Filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to probe install directory"), "dir", dir)
	}
	return !info.IsDir(), nil
}
