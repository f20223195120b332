package ports

import "go.trai.ch/kiln/internal/core/domain"

// ProjectLoader reads the game's build description.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load parses CMakeLists.txt in root.
	Load(root string) (*domain.Project, error)
}

// SettingsLoader reads optional project settings.
type SettingsLoader interface {
	// Load returns the settings in root, or defaults when no settings file exists.
	Load(root string) (domain.Settings, error)
}
