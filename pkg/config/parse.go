package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Resolve reads every recognized parameter from src and parses it as the
// key's numeric type. A nil src resolves the literal defaults. Resolution is
// all-or-nothing: the first missing or malformed key, in canonical order,
// fails the whole call with a *ConfigError.
func Resolve(src Source) (*Params, error) {
	if src == nil {
		src = Defaults()
	}

	r := &resolver{src: src}
	p := Params{
		Hosts:         r.intValue(KeyHosts),
		HostPEs:       r.intValue(KeyHostPEs),
		HostMIPS:      r.floatValue(KeyHostMIPS),
		HostRAM:       r.int64Value(KeyHostRAM),
		HostBandwidth: r.int64Value(KeyHostBandwidth),
		HostStorage:   r.int64Value(KeyHostStorage),

		Vms:         r.intValue(KeyVms),
		VmPEs:       r.intValue(KeyVmPEs),
		VmRAM:       r.int64Value(KeyVmRAM),
		VmBandwidth: r.int64Value(KeyVmBandwidth),
		VmSize:      r.int64Value(KeyVmSize),

		Cloudlets:      r.intValue(KeyCloudlets),
		CloudletPEs:    r.intValue(KeyCloudletPEs),
		CloudletLength: r.int64Value(KeyCloudletLength),
		CloudletSize:   r.int64Value(KeyCloudletSize),

		Utilization: r.floatValue(KeyUtilization),
	}
	if r.err != nil {
		return nil, r.err
	}
	return &p, nil
}

// resolver keeps the first error; once set, later lookups are no-ops.
type resolver struct {
	src Source
	err error
}

func (r *resolver) lookup(key string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	raw, ok := r.src.Lookup(key)
	if !ok {
		r.err = &ConfigError{Parameter: key, Source: r.src.Name(), Err: ErrMissingParameter}
		return "", false
	}
	return strings.TrimSpace(raw), true
}

func (r *resolver) fail(key, raw string, cause error) {
	r.err = &ConfigError{
		Parameter: key,
		Value:     raw,
		Source:    r.src.Name(),
		Err:       fmt.Errorf("%w: %w", ErrMalformedParameter, cause),
	}
}

func (r *resolver) intValue(key string) int {
	raw, ok := r.lookup(key)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.fail(key, raw, err)
		return 0
	}
	return v
}

func (r *resolver) int64Value(key string) int64 {
	raw, ok := r.lookup(key)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.fail(key, raw, err)
		return 0
	}
	return v
}

func (r *resolver) floatValue(key string) float64 {
	raw, ok := r.lookup(key)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.fail(key, raw, err)
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		r.fail(key, raw, fmt.Errorf("not a finite number"))
		return 0
	}
	return v
}
