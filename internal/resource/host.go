package resource

import (
	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/validation"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
)

// HostSpec describes the capacity of one host. All PEs of a host share the
// same speed.
type HostSpec struct {
	PEs       int     `validate:"gt=0" param:"host.pes"`
	MIPS      float64 `validate:"gt=0" param:"host.mips"`
	RAM       int64   `validate:"gt=0" param:"host.ram"`
	Bandwidth int64   `validate:"gt=0" param:"host.bw"`
	Storage   int64   `validate:"gt=0" param:"host.storage"`
}

// BuildHost creates a host with exactly spec.PEs processing elements of speed
// spec.MIPS. PE ids run from 0 in creation order.
func BuildHost(id int, spec HostSpec) (*models.Host, error) {
	if err := validation.Struct(spec); err != nil {
		return nil, err
	}

	pes := make([]models.ProcessingElement, spec.PEs)
	for i := range pes {
		pes[i] = models.ProcessingElement{ID: i, MIPS: spec.MIPS}
	}

	return &models.Host{
		ID:        id,
		RAM:       spec.RAM,
		Bandwidth: spec.Bandwidth,
		Storage:   spec.Storage,
		PEs:       pes,
	}, nil
}
