package controllers

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/githooks/internal/domain/commands"
	"github.com/rios0rios0/githooks/internal/domain/entities"
)

// CopyrightController handles the "check-copyright" subcommand.
type CopyrightController struct {
	command commands.Copyright
}

// NewCopyrightController creates a new CopyrightController.
func NewCopyrightController(command commands.Copyright) *CopyrightController {
	return &CopyrightController{command: command}
}

// GetBind returns the Cobra command metadata for the copyright controller.
func (it *CopyrightController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check-copyright [FILES...]",
		Short: "Verify files carry an up-to-date copyright header",
		Long: `Check that each file carries an up-to-date copyright header owned
by the configured entity.

Missing headers are inserted (after any shebang or encoding declaration)
and stale year ranges are renewed unless --no-update is given, in which
case violations are only reported.`,
	}
}

// Execute runs the copyright check.
func (it *CopyrightController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	owner, _ := cmd.Flags().GetString("owner")
	if owner == "" {
		owner = settings.Owner
	}
	if owner == "" {
		return errors.New(`required flag "owner" not set`)
	}

	noUpdate, _ := cmd.Flags().GetBool("no-update")

	return it.command.Execute(context.Background(), settings, commands.CopyrightOptions{
		Files:  args,
		Owner:  owner,
		Update: !noUpdate,
	})
}

// AddFlags adds the copyright-specific flags to the given Cobra command.
func (it *CopyrightController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("owner", "o", "", "Owner of the license")
	cmd.Flags().BoolP("no-update", "n", false, "Whether to skip copyright update")
}
