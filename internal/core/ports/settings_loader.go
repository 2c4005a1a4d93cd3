package ports

import "go.trai.ch/reel/internal/core/domain"

// SettingsLoader defines the interface for resolving runtime settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file at path, applying defaults and environment overrides.
	// A missing file is not an error.
	Load(path string) (*domain.Settings, error)
}
