package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/boundtree/internal/config"
)

const (
	initUse                  = "init"
	initShortDescription     = "write a default configuration file"
	initLongDescription      = `Write the default configuration to ./.boundtree.yaml, or to ~/.boundtree/config.yaml with --global.`
	globalFlagName           = "global"
	forceFlagName            = "force"
	globalFlagDescription    = "write the global configuration instead of the local one"
	forceFlagDescription     = "overwrite an existing configuration file"
	configurationWrittenText = "Configuration written to %s\n"
)

// createInitCommand returns the init subcommand.
func createInitCommand(dependencies applicationDependencies) *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: dependencies.workingDirectory,
			})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), configurationWrittenText, writtenPath)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&global, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, forceFlagName, false, forceFlagDescription)
	return initCommand
}
