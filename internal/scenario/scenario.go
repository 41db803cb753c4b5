// Package scenario assembles a complete simulation scenario from resolved
// parameters and hands it to a simulation engine.
package scenario

import (
	"fmt"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/resource"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/workload"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/logger"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
)

// DatacenterName is the name given to the scenario's only datacenter.
const DatacenterName = "datacenter-0"

// Scenario is the fully built input of one simulation.
type Scenario struct {
	Datacenter  *models.Datacenter          `json:"datacenter" yaml:"datacenter"`
	Vms         []*models.Vm                `json:"vms" yaml:"vms"`
	Cloudlets   []*models.Cloudlet          `json:"cloudlets" yaml:"cloudlets"`
	Utilization *models.ConstantUtilization `json:"utilization" yaml:"utilization"`
}

// HostSpec extracts the host capacity from p.
func HostSpec(p *config.Params) resource.HostSpec {
	return resource.HostSpec{
		PEs:       p.HostPEs,
		MIPS:      p.HostMIPS,
		RAM:       p.HostRAM,
		Bandwidth: p.HostBandwidth,
		Storage:   p.HostStorage,
	}
}

// VmSpec extracts the VM demand from p. VMs run at the host PE speed.
func VmSpec(p *config.Params) resource.VmSpec {
	return resource.VmSpec{
		MIPS:      p.HostMIPS,
		PEs:       p.VmPEs,
		RAM:       p.VmRAM,
		Bandwidth: p.VmBandwidth,
		Size:      p.VmSize,
	}
}

// CloudletSpec extracts the cloudlet shape from p.
func CloudletSpec(p *config.Params) workload.CloudletSpec {
	return workload.CloudletSpec{
		Length: p.CloudletLength,
		PEs:    p.CloudletPEs,
		Size:   p.CloudletSize,
	}
}

// Assemble builds the datacenter, the VM fleet and the workload described by
// p, in that order. The first structural violation is returned and nothing is
// built.
func Assemble(p *config.Params) (*Scenario, error) {
	dc, err := resource.BuildDatacenter(DatacenterName, p.Hosts, resource.HomogeneousHosts(HostSpec(p)))
	if err != nil {
		return nil, err
	}
	logger.Debug("datacenter built", "name", dc.Name, "hosts", len(dc.Hosts), "pes", dc.PECount())

	vms, err := resource.BuildVms(p.Vms, resource.HomogeneousVms(VmSpec(p)))
	if err != nil {
		return nil, err
	}
	logger.Debug("vm fleet built", "vms", len(vms))

	cloudlets, err := workload.BuildCloudlets(p.Cloudlets, CloudletSpec(p), p.Utilization)
	if err != nil {
		return nil, err
	}
	// every cloudlet shares the one model BuildCloudlets created
	model, ok := cloudlets[0].Utilization.(*models.ConstantUtilization)
	if !ok {
		return nil, fmt.Errorf("unexpected utilization model %T", cloudlets[0].Utilization)
	}
	logger.Debug("workload built", "cloudlets", len(cloudlets), "utilization", model.Fraction())

	logger.Info("scenario assembled",
		"hosts", len(dc.Hosts),
		"vms", len(vms),
		"cloudlets", len(cloudlets))

	return &Scenario{
		Datacenter:  dc,
		Vms:         vms,
		Cloudlets:   cloudlets,
		Utilization: model,
	}, nil
}
