package resource

import (
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/validation"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
)

// VmSpec describes the demand of one VM. The VM's per-PE speed comes from the
// host speed setting, hence its parameter name.
type VmSpec struct {
	MIPS      float64 `validate:"gt=0" param:"host.mips"`
	PEs       int     `validate:"gt=0" param:"vm.pes"`
	RAM       int64   `validate:"gt=0" param:"vm.ram"`
	Bandwidth int64   `validate:"gt=0" param:"vm.bw"`
	Size      int64   `validate:"gt=0" param:"vm.size"`
}

// VmFactory builds the VM at position index of a fleet.
type VmFactory func(index int) (*models.Vm, error)

// BuildVm creates one VM descriptor.
func BuildVm(id int, spec VmSpec) (*models.Vm, error) {
	if err := validation.Struct(spec); err != nil {
		return nil, err
	}
	return &models.Vm{
		ID:        id,
		MIPS:      spec.MIPS,
		PEs:       spec.PEs,
		RAM:       spec.RAM,
		Bandwidth: spec.Bandwidth,
		Size:      spec.Size,
	}, nil
}

// HomogeneousVms returns a factory producing identical VMs from spec.
func HomogeneousVms(spec VmSpec) VmFactory {
	return func(index int) (*models.Vm, error) {
		return BuildVm(index, spec)
	}
}

// BuildVms calls factory exactly count times and returns the VMs in creation order.
func BuildVms(count int, factory VmFactory) ([]*models.Vm, error) {
	if err := validation.Var(config.KeyVms, count, "gt=0"); err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, errors.New("vm factory is required")
	}

	vms := make([]*models.Vm, 0, count)
	for i := 0; i < count; i++ {
		vm, err := factory(i)
		if err != nil {
			return nil, fmt.Errorf("vm %d: %w", i, err)
		}
		if vm == nil {
			return nil, fmt.Errorf("vm %d: factory returned no vm", i)
		}
		vms = append(vms, vm)
	}
	return vms, nil
}
