package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/report"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/scenario"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
)

var legalOutputTypes = []string{report.FormatYAML, report.FormatJSON}

// RenderOptions configures the render subcommand.
type RenderOptions struct {
	ScenarioOptions

	Format string
}

// NewCmdRender returns the render subcommand, which prints the assembled
// scenario without contacting the daemon.
func NewCmdRender() *cobra.Command {
	o := &RenderOptions{Format: report.FormatYAML}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Assemble the scenario and print it without running it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *RenderOptions) Bind(fs *pflag.FlagSet) {
	o.ScenarioOptions.Bind(fs)

	fs.StringVarP(&o.Format, "format", "o", o.Format,
		fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *RenderOptions) Validate() error {
	if !slices.Contains(legalOutputTypes, strings.ToLower(o.Format)) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

func (o *RenderOptions) Run(_ context.Context, out io.Writer) error {
	src, err := o.Source()
	if err != nil {
		return err
	}
	params, err := config.Resolve(src)
	if err != nil {
		return err
	}
	s, err := scenario.Assemble(params)
	if err != nil {
		return err
	}
	return report.WriteScenario(out, s, o.Format)
}
