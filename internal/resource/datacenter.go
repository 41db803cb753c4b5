package resource

import (
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/internal/validation"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
)

// HostFactory builds the host at position index of a datacenter.
type HostFactory func(index int) (*models.Host, error)

// HomogeneousHosts returns a factory producing identical hosts from spec,
// each with its index as id.
func HomogeneousHosts(spec HostSpec) HostFactory {
	return func(index int) (*models.Host, error) {
		return BuildHost(index, spec)
	}
}

// BuildDatacenter calls factory exactly hostCount times and collects the hosts
// in creation order. Any failure discards the hosts built so far.
func BuildDatacenter(name string, hostCount int, factory HostFactory) (*models.Datacenter, error) {
	if err := validation.Var(config.KeyHosts, hostCount, "gt=0"); err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, errors.New("host factory is required")
	}

	hosts := make([]*models.Host, 0, hostCount)
	for i := 0; i < hostCount; i++ {
		host, err := factory(i)
		if err != nil {
			return nil, fmt.Errorf("host %d: %w", i, err)
		}
		if host == nil || len(host.PEs) == 0 {
			return nil, &models.InvalidScenarioError{
				Parameter: config.KeyHostPEs,
				Value:     0,
				Reason:    fmt.Sprintf("host %d has no processing elements", i),
			}
		}
		hosts = append(hosts, host)
	}

	return &models.Datacenter{Name: name, Hosts: hosts}, nil
}
