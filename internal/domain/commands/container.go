package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewVersionBumpCommand); err != nil {
		return err
	}
	if err := container.Provide(NewCopyrightCommand); err != nil {
		return err
	}
	if err := container.Provide(NewModuleImportsCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *VersionBumpCommand) VersionBump {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *CopyrightCommand) Copyright {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ModuleImportsCommand) ModuleImports {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
