package simd

import (
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
)

// Document is the scenario as submitted to the daemon in scenario_yaml.
type Document struct {
	Datacenter *models.Datacenter `yaml:"datacenter"`
	Vms        []*models.Vm       `yaml:"vms"`
	Cloudlets  []*models.Cloudlet `yaml:"cloudlets"`
}

// Encode renders d as YAML.
func (d *Document) Encode() (string, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
