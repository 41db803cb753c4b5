package config

import (
	"maps"

	"github.com/spf13/viper"
)

// Source is a flat key/value store of scenario parameters.
type Source interface {
	// Lookup returns the raw string value for key and whether it is present.
	Lookup(key string) (string, bool)
	// Name identifies the source in error messages.
	Name() string
}

// MapSource is an in-memory Source.
type MapSource struct {
	name   string
	values map[string]string
}

// NewMapSource creates a Source over a copy of values.
func NewMapSource(name string, values map[string]string) *MapSource {
	return &MapSource{name: name, values: maps.Clone(values)}
}

// Lookup implements Source.
func (s *MapSource) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Name implements Source.
func (s *MapSource) Name() string {
	return s.name
}

// viperSource serves keys out of a loaded viper instance. Dotted keys such as
// "host.pes" resolve through viper's nested key lookup.
type viperSource struct {
	v    *viper.Viper
	name string
}

func (s *viperSource) Lookup(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

func (s *viperSource) Name() string {
	return s.name
}
