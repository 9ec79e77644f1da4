package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/githooks/internal/domain/commands"
	"github.com/rios0rios0/githooks/internal/domain/entities"
)

// VersionBumpController handles the "check-version-bumped" subcommand.
type VersionBumpController struct {
	command commands.VersionBump
}

// NewVersionBumpController creates a new VersionBumpController.
func NewVersionBumpController(command commands.VersionBump) *VersionBumpController {
	return &VersionBumpController{command: command}
}

// GetBind returns the Cobra command metadata for the version bump controller.
func (it *VersionBumpController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check-version-bumped [FILES...]",
		Short: "Verify the version file was bumped for changed directories",
		Long: `Check whether a version-declaration file was bumped when other
files in its directory tree changed.

Every directory containing at least one changed file (compared to the
upstream tracking ref, or the previous commit on a detached HEAD) is
searched for recognized version files; if one declares a version but its
own diff does not change it, the check fails.`,
	}
}

// Execute runs the version bump check.
func (it *VersionBumpController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return it.command.Execute(context.Background(), settings, commands.VersionBumpOptions{
		Files: args,
	})
}
