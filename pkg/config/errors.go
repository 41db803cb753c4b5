package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter is the cause when a required key is absent from the source.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrMalformedParameter is the cause when a value does not parse as the key's numeric type.
	ErrMalformedParameter = errors.New("malformed parameter value")
	// ErrUnreadableSource is the cause when the source itself cannot be read.
	ErrUnreadableSource = errors.New("unreadable configuration source")
)

// ConfigError reports a configuration problem. Parameter is empty when the
// source as a whole could not be read.
type ConfigError struct {
	Parameter string
	Value     string
	Source    string
	Err       error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Parameter == "":
		return fmt.Sprintf("config source %s: %v", e.Source, e.Err)
	case errors.Is(e.Err, ErrMalformedParameter):
		return fmt.Sprintf("config parameter %q = %q (source %s): %v", e.Parameter, e.Value, e.Source, e.Err)
	default:
		return fmt.Sprintf("config parameter %q (source %s): %v", e.Parameter, e.Source, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
