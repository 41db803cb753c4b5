package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by this module.
const EnvPrefix = "SCENARIO"

// Runtime holds process settings that are not part of the scenario itself.
type Runtime struct {
	EngineURL       string        `envconfig:"ENGINE_URL" default:"http://localhost:8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"text"`
	PollInterval    time.Duration `envconfig:"POLL_INTERVAL" default:"200ms"`
	PollMaxInterval time.Duration `envconfig:"POLL_MAX_INTERVAL" default:"5s"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
}

// LoadRuntime reads Runtime from SCENARIO_* environment variables.
func LoadRuntime() (*Runtime, error) {
	var rt Runtime
	if err := envconfig.Process(EnvPrefix, &rt); err != nil {
		return nil, fmt.Errorf("failed to read runtime settings: %w", err)
	}
	if rt.PollInterval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", rt.PollInterval)
	}
	if rt.PollMaxInterval < rt.PollInterval {
		rt.PollMaxInterval = rt.PollInterval
	}
	return &rt, nil
}
