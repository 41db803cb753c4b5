package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Recognized scenario parameter keys.
const (
	KeyHosts          = "hosts"
	KeyHostPEs        = "host.pes"
	KeyHostMIPS       = "host.mips"
	KeyHostRAM        = "host.ram"
	KeyHostBandwidth  = "host.bw"
	KeyHostStorage    = "host.storage"
	KeyVms            = "vms"
	KeyVmPEs          = "vm.pes"
	KeyVmRAM          = "vm.ram"
	KeyVmBandwidth    = "vm.bw"
	KeyVmSize         = "vm.size"
	KeyCloudlets      = "cloudlets"
	KeyCloudletPEs    = "cloudlet.pes"
	KeyCloudletLength = "cloudlet.length"
	KeyCloudletSize   = "cloudlet.size"
	KeyUtilization    = "utilization"
)

// Keys lists every recognized key in canonical order.
var Keys = []string{
	KeyHosts, KeyHostPEs, KeyHostMIPS, KeyHostRAM, KeyHostBandwidth, KeyHostStorage,
	KeyVms, KeyVmPEs, KeyVmRAM, KeyVmBandwidth, KeyVmSize,
	KeyCloudlets, KeyCloudletPEs, KeyCloudletLength, KeyCloudletSize,
	KeyUtilization,
}

// Params is a fully resolved scenario configuration. It holds scalars only, so
// two Params compare equal with == when every parameter value matches.
type Params struct {
	Hosts         int     `yaml:"hosts" json:"hosts"`
	HostPEs       int     `yaml:"host_pes" json:"host_pes"`
	HostMIPS      float64 `yaml:"host_mips" json:"host_mips"`
	HostRAM       int64   `yaml:"host_ram" json:"host_ram"`
	HostBandwidth int64   `yaml:"host_bw" json:"host_bw"`
	HostStorage   int64   `yaml:"host_storage" json:"host_storage"`

	Vms         int   `yaml:"vms" json:"vms"`
	VmPEs       int   `yaml:"vm_pes" json:"vm_pes"`
	VmRAM       int64 `yaml:"vm_ram" json:"vm_ram"`
	VmBandwidth int64 `yaml:"vm_bw" json:"vm_bw"`
	VmSize      int64 `yaml:"vm_size" json:"vm_size"`

	Cloudlets      int   `yaml:"cloudlets" json:"cloudlets"`
	CloudletPEs    int   `yaml:"cloudlet_pes" json:"cloudlet_pes"`
	CloudletLength int64 `yaml:"cloudlet_length" json:"cloudlet_length"`
	CloudletSize   int64 `yaml:"cloudlet_size" json:"cloudlet_size"`

	// Utilization is the constant fraction of requested resources a cloudlet uses.
	Utilization float64 `yaml:"utilization" json:"utilization"`
}

// Values returns the parameters keyed by their configuration key.
func (p Params) Values() map[string]string {
	itoa := func(v int64) string { return strconv.FormatInt(v, 10) }
	ftoa := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	return map[string]string{
		KeyHosts:          itoa(int64(p.Hosts)),
		KeyHostPEs:        itoa(int64(p.HostPEs)),
		KeyHostMIPS:       ftoa(p.HostMIPS),
		KeyHostRAM:        itoa(p.HostRAM),
		KeyHostBandwidth:  itoa(p.HostBandwidth),
		KeyHostStorage:    itoa(p.HostStorage),
		KeyVms:            itoa(int64(p.Vms)),
		KeyVmPEs:          itoa(int64(p.VmPEs)),
		KeyVmRAM:          itoa(p.VmRAM),
		KeyVmBandwidth:    itoa(p.VmBandwidth),
		KeyVmSize:         itoa(p.VmSize),
		KeyCloudlets:      itoa(int64(p.Cloudlets)),
		KeyCloudletPEs:    itoa(int64(p.CloudletPEs)),
		KeyCloudletLength: itoa(p.CloudletLength),
		KeyCloudletSize:   itoa(p.CloudletSize),
		KeyUtilization:    ftoa(p.Utilization),
	}
}

// Properties renders the parameters as key=value lines in canonical key order.
func (p Params) Properties() string {
	values := p.Values()
	var b strings.Builder
	for _, key := range Keys {
		fmt.Fprintf(&b, "%s=%s\n", key, values[key])
	}
	return b.String()
}
