package ports

import "go.trai.ch/rebuild/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the configuration file at path.
	Load(path string) (*domain.Config, error)

	// Discover walks up from cwd and returns the path of the first configuration file.
	Discover(cwd string) (string, error)
}
