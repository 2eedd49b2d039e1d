// Package config provides the configuration loader for relock.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "relock.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	log      ports.Logger
}

// NewLoader creates a new Loader reading DefaultFilename.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		Filename: DefaultFilename,
		log:      log,
	}
}

// relockFile represents the structure of the relock.yaml configuration file.
type relockFile struct {
	Version     string   `yaml:"version"`
	Packages    []string `yaml:"packages"`
	Parallelism int      `yaml:"parallelism"`
	Dev         *bool    `yaml:"dev"`
}

// Load reads the configuration from the given working directory. A missing
// config file is not an error; defaults apply.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file relockFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	if file.Version != "" && file.Version != "1" {
		l.log.Warn("unknown config version " + file.Version + ", continuing with version 1 semantics")
	}

	cfg := domain.DefaultConfig()
	cfg.Packages = file.Packages
	cfg.Parallelism = file.Parallelism
	if file.Dev != nil {
		cfg.Dev = *file.Dev
	}
	return cfg, nil
}
