package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/encoding/javaproperties"
	"github.com/spf13/viper"
)

// DefaultFile is the properties file picked up from the working directory when
// no path is given explicitly.
const DefaultFile = "config.properties"

type loadOptions struct {
	envPrefix string
}

// LoadOption customizes LoadFile.
type LoadOption func(*loadOptions)

// WithEnvPrefix lets environment variables override file values. The variable
// name is the prefix plus the upper-cased key with dots replaced by
// underscores, e.g. SCENARIO_HOST_PES for host.pes.
func WithEnvPrefix(prefix string) LoadOption {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// LoadFile reads a scenario parameter file. YAML, JSON and TOML files are
// recognized by extension; anything else is read as a properties file.
func LoadFile(path string, opts ...LoadOption) (Source, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := newViper(o)
	v.SetConfigFile(path)
	v.SetConfigType(formatFor(path))
	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigError{Source: path, Err: fmt.Errorf("%w: %w", ErrUnreadableSource, err)}
	}
	return &viperSource{v: v, name: path}, nil
}

// LoadDefaultFile loads DefaultFile when it exists in the working directory.
// It reports false, without error, when the file is absent.
func LoadDefaultFile(opts ...LoadOption) (Source, bool, error) {
	if _, err := os.Stat(DefaultFile); err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, &ConfigError{Source: DefaultFile, Err: fmt.Errorf("%w: %w", ErrUnreadableSource, err)}
	}
	src, err := LoadFile(DefaultFile, opts...)
	if err != nil {
		return nil, false, err
	}
	return src, true, nil
}

// ParseProperties reads properties text (key=value lines) into a Source.
func ParseProperties(name string, data []byte) (Source, error) {
	v := newViper(loadOptions{})
	v.SetConfigType("properties")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, &ConfigError{Source: name, Err: fmt.Errorf("%w: %w", ErrUnreadableSource, err)}
	}
	return &viperSource{v: v, name: name}, nil
}

// propertiesFormats are the config types decoded as Java-style properties.
var propertiesFormats = []string{"properties", "props", "prop"}

// newCodecRegistry registers a properties codec next to viper's built-in
// yaml, json and toml codecs. The codec is stateful: one per viper instance.
func newCodecRegistry() *viper.DefaultCodecRegistry {
	r := viper.NewCodecRegistry()
	codec := &javaproperties.Codec{}
	for _, format := range propertiesFormats {
		_ = r.RegisterCodec(format, codec)
	}
	return r
}

func newViper(o loadOptions) *viper.Viper {
	v := viper.NewWithOptions(viper.WithCodecRegistry(newCodecRegistry()))
	if o.envPrefix != "" {
		v.SetEnvPrefix(o.envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}
	return v
}

func formatFor(path string) string {
	switch ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."); ext {
	case "yaml", "yml", "json", "toml":
		return ext
	default:
		return "properties"
	}
}
