package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/githooks/internal"
	"github.com/rios0rios0/githooks/internal/domain/entities"
)

// flagAdder is implemented by controllers exposing subcommand flags.
type flagAdder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "githooks",
		Short: "Pre-commit style checks for changed files",
		Long: `A suite of small pre-commit style checks run against changed files
in a Git repository:

  check-version-bumped       verify a version file was bumped alongside changes
  check-copyright            keep copyright headers present and current
  check-only-module-imports  enforce the module-only import convention

Each check exits 0 on success and 1 when a violation was found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				if verbose, _ := command.Flags().GetBool("verbose"); verbose {
					logger.SetLevel(logger.DebugLevel)
				}
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if adder, ok := ctrl.(flagAdder); ok {
			adder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, injectAppContext())

	if err := cobraRoot.Execute(); err != nil {
		if !errors.Is(err, entities.ErrChecksFailed) {
			logger.Errorf("Error executing 'githooks': %s", err)
		}
		os.Exit(1)
	}
}
