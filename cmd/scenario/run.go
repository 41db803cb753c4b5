package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/report"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/scenario"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/simd"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/logger"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/utils"
)

// RunOptions configures the run subcommand and the daemon client it uses.
type RunOptions struct {
	ScenarioOptions

	EngineURL       string
	PollInterval    time.Duration
	PollMaxInterval time.Duration
	RequestTimeout  time.Duration
	JSON            bool
}

// DefaultRunOptions seeds the daemon settings from rt.
func DefaultRunOptions(rt *config.Runtime) *RunOptions {
	return &RunOptions{
		EngineURL:       rt.EngineURL,
		PollInterval:    rt.PollInterval,
		PollMaxInterval: rt.PollMaxInterval,
		RequestTimeout:  rt.RequestTimeout,
	}
}

// NewCmdRun returns the run subcommand.
func NewCmdRun(rt *config.Runtime) *cobra.Command {
	o := DefaultRunOptions(rt)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Assemble the scenario, run it on the simulation daemon and print the results",
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

func (o *RunOptions) Bind(fs *pflag.FlagSet) {
	o.ScenarioOptions.Bind(fs)

	fs.StringVar(&o.EngineURL, "engine-url", o.EngineURL, "Simulation daemon URL")
	fs.DurationVar(&o.PollInterval, "poll-interval", o.PollInterval, "Initial run status poll interval")
	fs.DurationVar(&o.PollMaxInterval, "poll-max-interval", o.PollMaxInterval, "Maximum run status poll interval")
	fs.DurationVar(&o.RequestTimeout, "request-timeout", o.RequestTimeout, "Timeout of each request to the daemon")
	fs.BoolVar(&o.JSON, "json", o.JSON, "Output JSON instead of a table")
}

// Validate requires a daemon URL and a positive poll interval. The maximum
// poll interval is raised to the initial one when smaller.
func (o *RunOptions) Validate() error {
	if o.EngineURL == "" {
		return errors.New("engine URL is required")
	}
	if o.PollInterval <= 0 {
		return errors.New("poll interval must be positive")
	}
	if o.PollMaxInterval < o.PollInterval {
		o.PollMaxInterval = o.PollInterval
	}
	return nil
}

type runResult struct {
	RunID     string                    `json:"run_id"`
	Summary   report.Summary            `json:"summary"`
	Cloudlets []models.FinishedCloudlet `json:"cloudlets"`
}

// Run assembles the scenario, runs it on the daemon and writes the finished
// cloudlets to out as a table or JSON.
func (o *RunOptions) Run(ctx context.Context, out io.Writer) error {
	src, err := o.Source()
	if err != nil {
		return err
	}

	client := simd.NewClient(o.EngineURL,
		simd.WithHTTPClient(&http.Client{Timeout: o.RequestTimeout}),
		simd.WithPollBackoff(utils.NewExponentialBackoff(o.PollInterval, o.PollMaxInterval, 2)),
		simd.WithLogger(logger.Default),
	)

	logger.Info("running scenario", "source", src.Name(), "engine", o.EngineURL)
	_, finished, err := scenario.Run(ctx, src, client)
	if err != nil {
		return err
	}

	summary := report.Summarize(finished)
	if o.JSON {
		return report.WriteJSON(out, runResult{RunID: client.RunID(), Summary: summary, Cloudlets: finished})
	}
	if err := report.WriteTable(out, finished); err != nil {
		return err
	}
	return report.WriteSummary(out, summary)
}
