package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/logger"
)

// GlobalOptions holds the logging flags shared by every subcommand.
type GlobalOptions struct {
	LogLevel  string
	LogFormat string
}

// DefaultGlobalOptions seeds the logging flags from the runtime settings.
func DefaultGlobalOptions(rt *config.Runtime) GlobalOptions {
	return GlobalOptions{
		LogLevel:  rt.LogLevel,
		LogFormat: rt.LogFormat,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&o.LogFormat, "log-format", o.LogFormat, "Log format (text, json)")
}

// Validate rejects log formats the logger cannot produce.
func (o *GlobalOptions) Validate() error {
	switch strings.ToLower(o.LogFormat) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("log format must be text or json, got %q", o.LogFormat)
	}
}

// ScenarioOptions selects where scenario parameters come from.
type ScenarioOptions struct {
	ConfigFile string
	EnvPrefix  string
}

func (o *ScenarioOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFile, "config", "c", o.ConfigFile,
		fmt.Sprintf("Scenario parameter file (properties, yaml, json or toml). Defaults to ./%s when present", config.DefaultFile))
	fs.StringVar(&o.EnvPrefix, "env-prefix", o.EnvPrefix,
		"Let <PREFIX>_<KEY> environment variables override file values, e.g. SCENARIO_HOST_PES")
}

// Source opens the explicit config file, else ./config.properties, else the
// built-in defaults.
func (o *ScenarioOptions) Source() (config.Source, error) {
	var opts []config.LoadOption
	if o.EnvPrefix != "" {
		opts = append(opts, config.WithEnvPrefix(o.EnvPrefix))
	}

	if o.ConfigFile != "" {
		return config.LoadFile(o.ConfigFile, opts...)
	}

	src, found, err := config.LoadDefaultFile(opts...)
	if err != nil {
		return nil, err
	}
	if !found {
		logger.Debug("no parameter file found, using defaults", "file", config.DefaultFile)
		return config.Defaults(), nil
	}
	return src, nil
}

// NewRootCmd builds the scenario command tree.
func NewRootCmd(rt *config.Runtime) *cobra.Command {
	o := DefaultGlobalOptions(rt)
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Build and launch cloud simulation scenarios",
		Long: `scenario builds a datacenter, VM fleet and cloudlet workload from a
parameter file and submits it to a simulation daemon.

Environment Variables:
  SCENARIO_ENGINE_URL         Simulation daemon URL (default: http://localhost:8080)
  SCENARIO_LOG_LEVEL          Log level (default: info)
  SCENARIO_LOG_FORMAT         Log format (default: text)
  SCENARIO_POLL_INTERVAL      Initial run status poll interval (default: 200ms)
  SCENARIO_POLL_MAX_INTERVAL  Maximum run status poll interval (default: 5s)
  SCENARIO_REQUEST_TIMEOUT    Per-request timeout (default: 30s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			logger.SetDefault(logger.NewWithFormat(o.LogFormat, o.LogLevel, cmd.ErrOrStderr()))
			return nil
		},
	}
	o.Bind(cmd.PersistentFlags())

	cmd.AddCommand(NewCmdRun(rt))
	cmd.AddCommand(NewCmdRender())
	cmd.AddCommand(NewCmdDefaults())
	return cmd
}
