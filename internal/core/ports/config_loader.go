package ports

import "go.trai.ch/relock/internal/core/domain"

// ConfigLoader loads the tool configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory, falling
	// back to defaults when no config file exists.
	Load(cwd string) (*domain.Config, error)
}
