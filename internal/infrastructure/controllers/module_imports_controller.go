package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/githooks/internal/domain/commands"
	"github.com/rios0rios0/githooks/internal/domain/entities"
)

// ModuleImportsController handles the "check-only-module-imports" subcommand.
type ModuleImportsController struct {
	command commands.ModuleImports
}

// NewModuleImportsController creates a new ModuleImportsController.
func NewModuleImportsController(command commands.ModuleImports) *ModuleImportsController {
	return &ModuleImportsController{command: command}
}

// GetBind returns the Cobra command metadata for the module imports controller.
func (it *ModuleImportsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check-only-module-imports [FILES...]",
		Short: "Verify from-imports only reference submodules",
		Long: `Statically verify that "from X import Y" style imports only
reference importable submodules, not objects.

Resolution is best-effort: modules that cannot be located in the
checking environment fall back to a naming-convention heuristic, and
wildcard imports are never flagged.`,
	}
}

// Execute runs the import shape check.
func (it *ModuleImportsController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	skipModules, _ := cmd.Flags().GetStringSlice("skip-modules")

	return it.command.Execute(context.Background(), settings, commands.ModuleImportsOptions{
		Files:       args,
		SkipModules: skipModules,
	})
}

// AddFlags adds the import-check-specific flags to the given Cobra command.
func (it *ModuleImportsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("skip-modules", "s", nil,
		"Comma-separated list of modules to skip")
}
