package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	p, err := Resolve(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultParams(), *p)
	assert.Equal(t, 1, p.Hosts)
	assert.Equal(t, 8, p.HostPEs)
	assert.Equal(t, 1000.0, p.HostMIPS)
	assert.Equal(t, int64(2048), p.HostRAM)
	assert.Equal(t, int64(10_000), p.HostBandwidth)
	assert.Equal(t, int64(1_000_000), p.HostStorage)
	assert.Equal(t, 2, p.Vms)
	assert.Equal(t, 4, p.VmPEs)
	assert.Equal(t, 4, p.Cloudlets)
	assert.Equal(t, 2, p.CloudletPEs)
	assert.Equal(t, int64(10_000), p.CloudletLength)
	assert.Equal(t, 0.5, p.Utilization)
}

func TestResolveIsIdempotent(t *testing.T) {
	src := NewMapSource("test", DefaultParams().Values())

	first, err := Resolve(src)
	require.NoError(t, err)
	second, err := Resolve(src)
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
	assert.NotSame(t, first, second)

	first.Hosts = 99
	assert.Equal(t, 1, second.Hosts, "resolved configs must not share state")
}

func TestResolveMissingParameter(t *testing.T) {
	values := DefaultParams().Values()
	delete(values, KeyVmPEs)

	p, err := Resolve(NewMapSource("partial.properties", values))
	require.Error(t, err)
	assert.Nil(t, p)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, KeyVmPEs, cfgErr.Parameter)
	assert.Equal(t, "partial.properties", cfgErr.Source)
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.Contains(t, err.Error(), `"vm.pes"`)
}

func TestResolveReportsFirstMissingKeyInCanonicalOrder(t *testing.T) {
	src := NewMapSource("sparse", map[string]string{
		KeyHosts:   "1",
		KeyHostPEs: "8",
	})

	_, err := Resolve(src)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, KeyHostMIPS, cfgErr.Parameter)
}

func TestResolveMalformedParameter(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric count", KeyHosts, "two"},
		{"fractional integer", KeyHostBandwidth, "1.5"},
		{"fractional PE count", KeyCloudletPEs, "2.0"},
		{"empty value", KeyVmRAM, ""},
		{"non-numeric speed", KeyHostMIPS, "fast"},
		{"NaN utilization", KeyUtilization, "NaN"},
		{"infinite speed", KeyHostMIPS, "+Inf"},
		{"int64 overflow", KeyHostStorage, "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := DefaultParams().Values()
			values[tt.key] = tt.value

			_, err := Resolve(NewMapSource("test", values))

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.key, cfgErr.Parameter)
			assert.Equal(t, tt.value, cfgErr.Value)
			assert.True(t, errors.Is(err, ErrMalformedParameter))
		})
	}
}

func TestResolveWideIntegers(t *testing.T) {
	values := DefaultParams().Values()
	values[KeyHostStorage] = "10000000000000"
	values[KeyHostBandwidth] = " 40000000000 "

	p, err := Resolve(NewMapSource("test", values))
	require.NoError(t, err)

	assert.Equal(t, int64(10_000_000_000_000), p.HostStorage)
	assert.Equal(t, int64(40_000_000_000), p.HostBandwidth)
}

func TestParamsProperties(t *testing.T) {
	props := DefaultParams().Properties()

	assert.Contains(t, props, "hosts=1\n")
	assert.Contains(t, props, "host.mips=1000\n")
	assert.Contains(t, props, "host.storage=1000000\n")
	assert.Contains(t, props, "utilization=0.5\n")
	assert.Len(t, DefaultParams().Values(), len(Keys))
}

func TestDefaultParamsReturnsCopy(t *testing.T) {
	p := DefaultParams()
	p.Hosts = 99
	p.Utilization = 1

	fresh := DefaultParams()
	assert.Equal(t, 1, fresh.Hosts)
	assert.Equal(t, 0.5, fresh.Utilization)
}
