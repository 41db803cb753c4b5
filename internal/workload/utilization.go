package workload

import (
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
)

// NewUtilizationModel creates the constant utilization model shared by every
// cloudlet of a scenario.
func NewUtilizationModel(fraction float64) (*models.ConstantUtilization, error) {
	m, err := models.NewConstantUtilization(fraction)
	if err != nil {
		return nil, &models.InvalidScenarioError{
			Parameter: config.KeyUtilization,
			Value:     fraction,
			Reason:    "must be in (0, 1]",
		}
	}
	return m, nil
}
