// Package workload builds the cloudlet list submitted with a scenario.
package workload

import (
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/validation"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
)

// CloudletSpec describes one unit of work. Size is used for both the input
// file and the output size.
type CloudletSpec struct {
	Length int64 `validate:"gt=0" param:"cloudlet.length"`
	PEs    int   `validate:"gt=0" param:"cloudlet.pes"`
	Size   int64 `validate:"gt=0" param:"cloudlet.size"`
}

// CloudletFactory builds the cloudlet at position index of a workload.
type CloudletFactory func(index int) (*models.Cloudlet, error)

// BuildCloudlet creates one cloudlet bound to model.
func BuildCloudlet(id int, spec CloudletSpec, model models.UtilizationModel) (*models.Cloudlet, error) {
	if err := validation.Struct(spec); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, errors.New("utilization model is required")
	}
	return &models.Cloudlet{
		ID:          id,
		Length:      spec.Length,
		PEs:         spec.PEs,
		FileSize:    spec.Size,
		OutputSize:  spec.Size,
		Utilization: model,
	}, nil
}

// HomogeneousCloudlets returns a factory producing identical cloudlets that
// all reference the same model instance.
func HomogeneousCloudlets(spec CloudletSpec, model models.UtilizationModel) CloudletFactory {
	return func(index int) (*models.Cloudlet, error) {
		return BuildCloudlet(index, spec, model)
	}
}

// BuildCloudlets creates count cloudlets from spec sharing a single constant
// utilization model of the given fraction.
func BuildCloudlets(count int, spec CloudletSpec, fraction float64) ([]*models.Cloudlet, error) {
	if err := validation.Var(config.KeyCloudlets, count, "gt=0"); err != nil {
		return nil, err
	}
	model, err := NewUtilizationModel(fraction)
	if err != nil {
		return nil, err
	}
	return BuildCloudletsWith(count, HomogeneousCloudlets(spec, model))
}

// BuildCloudletsWith calls factory exactly count times and returns the
// cloudlets in creation order.
func BuildCloudletsWith(count int, factory CloudletFactory) ([]*models.Cloudlet, error) {
	if err := validation.Var(config.KeyCloudlets, count, "gt=0"); err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, errors.New("cloudlet factory is required")
	}

	cloudlets := make([]*models.Cloudlet, 0, count)
	for i := 0; i < count; i++ {
		c, err := factory(i)
		if err != nil {
			return nil, fmt.Errorf("cloudlet %d: %w", i, err)
		}
		if c == nil {
			return nil, fmt.Errorf("cloudlet %d: factory returned no cloudlet", i)
		}
		cloudlets = append(cloudlets, c)
	}
	return cloudlets, nil
}
