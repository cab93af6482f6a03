// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/platdep/internal/core/domain"

// ConfigLoader defines the interface for loading the platform-specific manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration file starting at cwd and walking up, and
	// returns the validated manifest.
	Load(cwd string) (*domain.Manifest, error)
}
