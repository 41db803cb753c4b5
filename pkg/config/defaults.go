package config

var defaultParams = Params{
	Hosts:         1,
	HostPEs:       8,
	HostMIPS:      1000,
	HostRAM:       2048,
	HostBandwidth: 10_000,
	HostStorage:   1_000_000,

	Vms:         2,
	VmPEs:       4,
	VmRAM:       512,
	VmBandwidth: 1000,
	VmSize:      10_000,

	Cloudlets:      4,
	CloudletPEs:    2,
	CloudletLength: 10_000,
	CloudletSize:   1024,

	Utilization: 0.5,
}

// DefaultParams returns the literal scenario used when no external source is
// given: one host of 8 PEs at 1000 MIPS, two 4-PE VMs and four 2-PE cloudlets
// of 10000 MI running at 50% utilization. Each call returns a fresh copy.
func DefaultParams() Params {
	return defaultParams
}

// Defaults returns a Source serving DefaultParams.
func Defaults() Source {
	return &MapSource{name: "defaults", values: defaultParams.Values()}
}
