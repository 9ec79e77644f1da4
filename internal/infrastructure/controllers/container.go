package controllers

import (
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/rios0rios0/githooks/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewVersionBumpController); err != nil {
		return err
	}
	if err := container.Provide(NewCopyrightController); err != nil {
		return err
	}
	if err := container.Provide(NewModuleImportsController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	versionBumpController *VersionBumpController,
	copyrightController *CopyrightController,
	moduleImportsController *ModuleImportsController,
) *[]entities.Controller {
	return &[]entities.Controller{
		versionBumpController,
		copyrightController,
		moduleImportsController,
	}
}

// loadSettings resolves settings from the --config flag, an auto-detected
// config file, or the defaults.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return entities.LoadSettings(configPath)
}
