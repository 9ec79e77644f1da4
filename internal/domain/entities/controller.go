package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind holds the Cobra command metadata exposed by a controller.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by every CLI controller. Execute returns an
// error so check failures can be mapped to a nonzero process exit.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
