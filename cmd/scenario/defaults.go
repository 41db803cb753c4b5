package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
)

// NewCmdDefaults returns the defaults subcommand, which prints the built-in
// parameters in properties form.
func NewCmdDefaults() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in scenario as a properties file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), config.DefaultParams().Properties())
			return err
		},
	}
}
